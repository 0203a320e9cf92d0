package llm

import "context"

// Client is the abstraction over a single generation backend: submit a
// prompt, receive text, bounded by a token budget. The backend may be slow,
// may return malformed text, and may fail outright; callers handle all
// three.
type Client interface {
	// Complete submits prompt and returns the raw response text.
	// A maxTokens of zero uses the backend's configured budget.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
	// Model returns the configured model identifier.
	Model() string
}

// Strategy names which configured backend a pipeline step wants.
type Strategy string

// StrategyPrimary selects the main backend; StrategyFallback selects the
// reserve backend kept for parse-failure recovery.
const (
	StrategyPrimary  Strategy = "primary"
	StrategyFallback Strategy = "fallback"
)

// Pool holds the primary and fallback clients. Construct once at startup
// and share freely: clients carry no per-request mutable state.
type Pool struct {
	primary  Client
	fallback Client
}

// NewPool constructs both backends from config. Missing credentials for
// either backend are a fatal configuration problem; the service refuses to
// serve rather than partially degrade.
func NewPool(cfg Config) (*Pool, error) {
	primary, err := NewAnthropicClient(cfg)
	if err != nil {
		return nil, err
	}
	fallback, err := NewOpenAIClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Pool{primary: primary, fallback: fallback}, nil
}

// NewPoolWith builds a pool from pre-constructed clients. Used by tests and
// by callers that inject their own backends.
func NewPoolWith(primary, fallback Client) *Pool {
	return &Pool{primary: primary, fallback: fallback}
}

// Pick returns the client for a strategy. Unknown strategies resolve to the
// primary backend.
func (p *Pool) Pick(s Strategy) Client {
	if s == StrategyFallback && p.fallback != nil {
		return p.fallback
	}
	return p.primary
}
