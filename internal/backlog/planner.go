package backlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/vishkar/storycrafter/internal/llm"
	"github.com/vishkar/storycrafter/internal/parsing"
	"github.com/vishkar/storycrafter/internal/prompts"
	"github.com/vishkar/storycrafter/internal/schemas"
	"github.com/vishkar/storycrafter/internal/transcript"
	"github.com/vishkar/storycrafter/internal/types"
)

// GenerateEpics runs phase 1: a single generation call producing the flat
// epic structure, without stories. Epic ids are model-assigned and are not
// renumbered here.
func (s *Service) GenerateEpics(ctx context.Context, messages []types.TranscriptMessage, metadata *types.ProjectMetadata) ([]types.Epic, error) {
	fullContext := transcript.FormatFullContext(messages, metadata)
	return s.planEpicStructure(ctx, fullContext)
}

// planEpicStructure submits the epic-structure prompt and parses the
// response into epics.
func (s *Service) planEpicStructure(ctx context.Context, fullContext string) ([]types.Epic, error) {
	prompt := prompts.Format(prompts.MustGet("backlog.json", "epic-structure"), map[string]string{
		"FullContext": fullContext,
	})

	client := s.clients.Pick(llm.StrategyPrimary)
	log.Printf("[StoryCrafter] Phase 1: generating epic structure (model: %s)", client.Model())

	raw, err := client.Complete(ctx, prompt, planMaxTokens)
	if err != nil {
		return nil, err
	}

	epics, err := parseEpicList(raw)
	if err != nil {
		return nil, err
	}

	log.Printf("[StoryCrafter] Phase 1 complete: %d epics", len(epics))
	s.emit(StepPlan, fmt.Sprintf("Generated %d epics", len(epics)), len(epics))
	return epics, nil
}

// parseEpicList sanitizes raw model output and enforces the epic-array
// shape before unmarshalling.
func parseEpicList(raw string) ([]types.Epic, error) {
	rawJSON, err := parsing.SanitizeArray(raw)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateEpicList(rawJSON); err != nil {
		return nil, &parsing.ParseError{
			Message: "epic structure failed validation",
			Cause:   err,
		}
	}

	var epics []types.Epic
	if err := json.Unmarshal(rawJSON, &epics); err != nil {
		return nil, &parsing.ParseError{
			Message: "failed to decode epic structure",
			Cause:   err,
		}
	}
	return epics, nil
}
