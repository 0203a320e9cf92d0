package backlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/vishkar/storycrafter/internal/llm"
	"github.com/vishkar/storycrafter/internal/parsing"
	"github.com/vishkar/storycrafter/internal/prompts"
	"github.com/vishkar/storycrafter/internal/schemas"
	"github.com/vishkar/storycrafter/internal/transcript"
	"github.com/vishkar/storycrafter/internal/types"
)

// GenerateStories runs phase 2 for a single epic: one generation call
// requesting the epic's target story count. Story ids are requested in the
// <epic-id>-<n> convention but uniqueness is not enforced here; it surfaces
// later as an audit-level quality signal.
func (s *Service) GenerateStories(ctx context.Context, epic types.Epic, messages []types.TranscriptMessage, metadata *types.ProjectMetadata) ([]types.Story, error) {
	if epic.ID == "" {
		return nil, &parsing.InputError{Message: "epic id is required"}
	}

	fullContext := transcript.FormatFullContext(messages, metadata)
	return s.expandEpic(ctx, epic, fullContext)
}

// expandEpic generates stories for one epic. Expansion always uses the
// primary backend; the fallback strategy exists for the parse-failure
// branch, which is intentionally not taken yet.
func (s *Service) expandEpic(ctx context.Context, epic types.Epic, fullContext string) ([]types.Story, error) {
	target := epic.TargetStoryCount()

	prompt := prompts.Format(prompts.MustGet("backlog.json", "stories-for-epic"), map[string]string{
		"TargetCount":     strconv.Itoa(target),
		"EpicID":          epic.ID,
		"EpicTitle":       epic.Title,
		"EpicDescription": epic.Description,
		"FullContext":     fullContext,
	})

	client := s.clients.Pick(llm.StrategyPrimary)

	raw, err := client.Complete(ctx, prompt, storiesMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", epic.ID, err)
	}

	stories, err := parseStoryList(raw)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", epic.ID, err)
	}
	return stories, nil
}

// expandEpics expands every epic strictly in sequence: epic i+1's request
// is issued only after epic i's response is fully processed. This bounds
// concurrent backend load to one in-flight call and makes a failure name
// exactly one epic. A mid-loop failure aborts the whole expansion; there is
// no partial-success contract.
func (s *Service) expandEpics(ctx context.Context, epics []types.Epic, fullContext string) ([]types.Epic, error) {
	log.Printf("[StoryCrafter] Phase 2: expanding %d epics with stories...", len(epics))

	expanded := make([]types.Epic, 0, len(epics))
	for _, epic := range epics {
		log.Printf("[StoryCrafter]   Expanding %s: %s...", epic.ID, epic.Title)

		stories, err := s.expandEpic(ctx, epic, fullContext)
		if err != nil {
			return nil, err
		}

		log.Printf("[StoryCrafter]   Generated %d stories for %s", len(stories), epic.ID)
		s.emit(StepExpand, fmt.Sprintf("Expanded %s with %d stories", epic.ID, len(stories)), epic.ID)

		epic.Stories = stories
		expanded = append(expanded, epic)
	}
	return expanded, nil
}

// parseStoryList sanitizes raw model output and enforces the story-array
// shape before unmarshalling.
func parseStoryList(raw string) ([]types.Story, error) {
	rawJSON, err := parsing.SanitizeArray(raw)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateStoryList(rawJSON); err != nil {
		return nil, &parsing.ParseError{
			Message: "story list failed validation",
			Cause:   err,
		}
	}

	var stories []types.Story
	if err := json.Unmarshal(rawJSON, &stories); err != nil {
		return nil, &parsing.ParseError{
			Message: "failed to decode story list",
			Cause:   err,
		}
	}
	return stories, nil
}
