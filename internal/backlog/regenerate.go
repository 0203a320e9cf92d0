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

// RegenerateEpic produces an improved version of a single epic based on
// user feedback. The epic's id is preserved unconditionally: whatever id
// the model echoes back is overwritten with the original. Child stories
// are not regenerated and are not carried over; callers re-expand or
// re-attach them as needed.
func (s *Service) RegenerateEpic(ctx context.Context, epic types.Epic, feedback string, messages []types.TranscriptMessage, metadata *types.ProjectMetadata) (*types.Epic, error) {
	if epic.ID == "" {
		return nil, &parsing.InputError{Message: "epic id is required"}
	}
	if feedback == "" {
		return nil, &parsing.InputError{Message: "feedback is required"}
	}

	log.Printf("[StoryCrafter] Regenerating epic %s with feedback: %.100s", epic.ID, feedback)

	prompt := prompts.Format(prompts.MustGet("regen.json", "regenerate-epic"), map[string]string{
		"EpicID":          epic.ID,
		"EpicTitle":       epic.Title,
		"EpicDescription": epic.Description,
		"EpicPriority":    epic.Priority,
		"EpicCategory":    epic.Category,
		"UserFeedback":    feedback,
		"FullContext":     transcript.FormatFullContext(messages, metadata),
	})

	client := s.clients.Pick(llm.StrategyPrimary)

	raw, err := client.Complete(ctx, prompt, regenEpicMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("regenerating %s: %w", epic.ID, err)
	}

	rawJSON, err := parsing.SanitizeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateEpic(rawJSON); err != nil {
		return nil, &parsing.ParseError{
			Message: "regenerated epic failed validation",
			Cause:   err,
		}
	}

	var result types.Epic
	if err := json.Unmarshal(rawJSON, &result); err != nil {
		return nil, &parsing.ParseError{
			Message: "failed to decode regenerated epic",
			Cause:   err,
		}
	}

	// Ids are immutable across regeneration, regardless of what the
	// model returned.
	result.ID = epic.ID

	log.Printf("[StoryCrafter] Regenerated epic %s: %s", result.ID, result.Title)
	s.emit(StepRegenerate, fmt.Sprintf("Regenerated epic %s", result.ID), result.ID)
	return &result, nil
}

// RegenerateStory produces an improved version of a single story based on
// user feedback, in the context of its parent epic. As with epics, the
// story's id is preserved unconditionally.
func (s *Service) RegenerateStory(ctx context.Context, epic types.Epic, story types.Story, feedback string, messages []types.TranscriptMessage, metadata *types.ProjectMetadata) (*types.Story, error) {
	if story.ID == "" {
		return nil, &parsing.InputError{Message: "story id is required"}
	}
	if feedback == "" {
		return nil, &parsing.InputError{Message: "feedback is required"}
	}

	log.Printf("[StoryCrafter] Regenerating story %s with feedback: %.100s", story.ID, feedback)

	prompt := prompts.Format(prompts.MustGet("regen.json", "regenerate-story"), map[string]string{
		"EpicTitle":        epic.Title,
		"EpicDescription":  epic.Description,
		"StoryID":          story.ID,
		"StoryTitle":       story.Title,
		"StoryDescription": story.Description,
		"StoryPriority":    story.Priority,
		"StoryPoints":      strconv.Itoa(story.StoryPoints),
		"EstimatedHours":   strconv.Itoa(story.EstimatedHours),
		"CurrentCriteria":  renderList(story.AcceptanceCriteria),
		"CurrentTasks":     renderList(story.TechnicalTasks),
		"UserFeedback":     feedback,
		"FullContext":      transcript.FormatFullContext(messages, metadata),
	})

	client := s.clients.Pick(llm.StrategyPrimary)

	raw, err := client.Complete(ctx, prompt, regenStoryMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("regenerating %s: %w", story.ID, err)
	}

	rawJSON, err := parsing.SanitizeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateStory(rawJSON); err != nil {
		return nil, &parsing.ParseError{
			Message: "regenerated story failed validation",
			Cause:   err,
		}
	}

	var result types.Story
	if err := json.Unmarshal(rawJSON, &result); err != nil {
		return nil, &parsing.ParseError{
			Message: "failed to decode regenerated story",
			Cause:   err,
		}
	}

	result.ID = story.ID

	log.Printf("[StoryCrafter] Regenerated story %s: %s", result.ID, result.Title)
	s.emit(StepRegenerate, fmt.Sprintf("Regenerated story %s", result.ID), result.ID)
	return &result, nil
}

// renderList formats the current criteria or tasks as an indented JSON
// array so the prompt shows the model exactly what it is revising.
func renderList(items []string) string {
	if items == nil {
		items = []string{}
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(out)
}
