// Package backlog orchestrates the two-phase generation pipeline that turns
// a consensus transcript into a structured project backlog.
package backlog

import (
	"github.com/vishkar/storycrafter/internal/audit"
	"github.com/vishkar/storycrafter/internal/llm"
)

// Generator identity stamped into assembled backlog metadata.
const generatorName = "StoryCrafter v2.0 (Anthropic + OpenAI)"

// sparseStoryThreshold is the story count under which a full backlog is
// logged as suspiciously sparse.
const sparseStoryThreshold = 20

// Per-call token budgets. Phase 1 and story expansion fit comfortably in
// 4k output tokens; a single regenerated epic needs far less.
const (
	planMaxTokens       = 4096
	storiesMaxTokens    = 4096
	regenEpicMaxTokens  = 2048
	regenStoryMaxTokens = 4096
	legacyMaxTokens     = 8192
)

// Pipeline step names used in progress events.
const (
	StepExtract    = "extract"
	StepPlan       = "plan"
	StepExpand     = "expand"
	StepAssemble   = "assemble"
	StepAudit      = "audit"
	StepRegenerate = "regenerate"
)

// ProgressEvent is a structured progress update emitted while a pipeline
// runs. Content carries step-specific payloads (an epic id, counts).
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback receives progress events. Callbacks run on the request
// goroutine and should return quickly.
type ProgressCallback func(event ProgressEvent)

// Service runs the generation pipeline against an injected client pool.
// Construct once and share: the service holds no per-request state.
type Service struct {
	clients    *llm.Pool
	auditCfg   audit.Config
	onProgress ProgressCallback
}

// Option configures a Service.
type Option func(*Service)

// WithAuditConfig overrides the acceptance-criteria audit thresholds.
func WithAuditConfig(cfg audit.Config) Option {
	return func(s *Service) { s.auditCfg = cfg }
}

// WithProgress registers a progress callback.
func WithProgress(cb ProgressCallback) Option {
	return func(s *Service) { s.onProgress = cb }
}

// New creates a Service using the given backend pool.
func New(clients *llm.Pool, opts ...Option) *Service {
	s := &Service{
		clients:  clients,
		auditCfg: audit.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) emit(step, message string, content any) {
	if s.onProgress != nil {
		s.onProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}
