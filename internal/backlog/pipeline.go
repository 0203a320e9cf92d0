package backlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/vishkar/storycrafter/internal/llm"
	"github.com/vishkar/storycrafter/internal/parsing"
	"github.com/vishkar/storycrafter/internal/prompts"
	"github.com/vishkar/storycrafter/internal/transcript"
	"github.com/vishkar/storycrafter/internal/types"
)

// Generate is the main entry point: produce a complete backlog from a
// consensus transcript. Full-context mode (the default) passes the whole
// transcript through the two-phase planner/expander protocol; legacy mode
// drives a single generation call from the extracted requirements digest
// and is retained for backward compatibility only.
func (s *Service) Generate(ctx context.Context, messages []types.TranscriptMessage, metadata *types.ProjectMetadata, fullContext bool) (*types.Backlog, error) {
	mode := "FULL CONTEXT"
	if !fullContext {
		mode = "REQUIREMENTS EXTRACTION"
	}
	log.Printf("[StoryCrafter] Starting backlog generation from %d messages (mode: %s)", len(messages), mode)

	// The digest is always built: legacy prompts need it and it feeds
	// diagnostics in both modes.
	digest := transcript.Extract(messages, metadata)
	s.emit(StepExtract, fmt.Sprintf("Extracted %d MVP features", len(digest.MVPFeatures)), nil)

	var epics []types.Epic
	var err error
	if fullContext {
		epics, err = s.generateTwoPhase(ctx, messages, metadata)
	} else {
		epics, err = s.generateLegacy(ctx, digest)
	}
	if err != nil {
		return nil, err
	}

	result := Assemble(epics, metadata)
	s.emit(StepAssemble, fmt.Sprintf("Assembled backlog: %d epics, %d stories",
		result.Metadata.TotalEpics, result.Metadata.TotalStories), nil)

	report := s.auditCfg.AuditBacklog(result)
	s.emit(StepAudit, fmt.Sprintf("Audited %d stories, %d with warnings",
		report.TotalStories, report.StoriesWithWarnings), nil)

	log.Printf("[StoryCrafter] Generated %d epics, %d stories",
		result.Metadata.TotalEpics, result.Metadata.TotalStories)
	s.warnIfSparse(result)

	return result, nil
}

// generateTwoPhase runs the structure-first protocol: one planning call,
// then one expansion call per epic, strictly sequentially.
func (s *Service) generateTwoPhase(ctx context.Context, messages []types.TranscriptMessage, metadata *types.ProjectMetadata) ([]types.Epic, error) {
	fullContext := transcript.FormatFullContext(messages, metadata)

	epics, err := s.planEpicStructure(ctx, fullContext)
	if err != nil {
		return nil, err
	}

	return s.expandEpics(ctx, epics, fullContext)
}

// legacyBacklog is the loosely-shaped document the legacy single-call mode
// produces. Epics stay raw until the collection shape has been checked.
type legacyBacklog struct {
	Project *types.ProjectInfo `json:"project"`
	Epics   json.RawMessage    `json:"epics"`
}

// generateLegacy drives one generation call from the requirements digest.
func (s *Service) generateLegacy(ctx context.Context, digest *types.RequirementsDigest) ([]types.Epic, error) {
	prompt := prompts.Format(prompts.MustGet("backlog.json", "legacy-backlog"), map[string]string{
		"Requirements": transcript.FormatDigest(digest),
	})

	client := s.clients.Pick(llm.StrategyPrimary)
	log.Printf("[StoryCrafter] Calling legacy backlog generation (model: %s)...", client.Model())

	raw, err := client.Complete(ctx, prompt, legacyMaxTokens)
	if err != nil {
		return nil, err
	}

	rawJSON, err := parsing.SanitizeObject(raw)
	if err != nil {
		return nil, err
	}

	var doc legacyBacklog
	if err := json.Unmarshal(rawJSON, &doc); err != nil {
		return nil, &parsing.ParseError{Message: "failed to decode backlog document", Cause: err}
	}
	if len(doc.Epics) == 0 {
		return nil, &parsing.InputError{Message: "backlog missing 'epics' field"}
	}

	var epics []types.Epic
	if err := json.Unmarshal(doc.Epics, &epics); err != nil {
		return nil, &parsing.InputError{Message: "'epics' must be a list"}
	}
	return epics, nil
}

// warnIfSparse logs a breakdown when the backlog came out thinner than a
// healthy generation should.
func (s *Service) warnIfSparse(b *types.Backlog) {
	if b.Metadata.TotalStories >= sparseStoryThreshold {
		return
	}
	log.Printf("[StoryCrafter] WARNING: generated only %d stories (expected %d+)",
		b.Metadata.TotalStories, sparseStoryThreshold)
	log.Printf("[StoryCrafter] Epic breakdown:")
	for _, epic := range b.Epics {
		log.Printf("  - %s: %d stories", epic.ID, len(epic.Stories))
	}
}
