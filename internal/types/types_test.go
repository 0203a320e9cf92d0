package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetStoryCount(t *testing.T) {
	tests := []struct {
		name     string
		epic     Epic
		expected int
	}{
		{"Explicit target", Epic{StoryCountTarget: 6}, 6},
		{"Zero falls back to default", Epic{}, DefaultStoryCountTarget},
		{"Negative falls back to default", Epic{StoryCountTarget: -1}, DefaultStoryCountTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.epic.TargetStoryCount())
		})
	}
}

func TestGenerateBacklogRequestFullContext(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name     string
		flag     *bool
		expected bool
	}{
		{"Unset defaults to full context", nil, true},
		{"Explicit true", &yes, true},
		{"Explicit false selects legacy mode", &no, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := GenerateBacklogRequest{UseFullContext: tt.flag}
			assert.Equal(t, tt.expected, req.FullContext())
		})
	}
}

func TestRequestValidation(t *testing.T) {
	messages := []TranscriptMessage{{Role: "alex", Content: "We need accounts."}}

	t.Run("Valid backlog request", func(t *testing.T) {
		req := GenerateBacklogRequest{ConsensusMessages: messages}
		assert.NoError(t, req.Validate())
	})

	t.Run("Missing messages rejected", func(t *testing.T) {
		req := GenerateBacklogRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("Empty messages rejected", func(t *testing.T) {
		req := GenerateBacklogRequest{ConsensusMessages: []TranscriptMessage{}}
		assert.Error(t, req.Validate())
	})

	t.Run("Message missing content rejected", func(t *testing.T) {
		req := GenerateEpicsRequest{ConsensusMessages: []TranscriptMessage{{Role: "alex"}}}
		assert.Error(t, req.Validate())
	})

	t.Run("Regenerate epic requires feedback", func(t *testing.T) {
		req := RegenerateEpicRequest{
			Epic:              Epic{ID: "EPIC-1"},
			ConsensusMessages: messages,
		}
		assert.Error(t, req.Validate())

		req.UserFeedback = "make it better"
		assert.NoError(t, req.Validate())
	})
}

func TestEpicJSONRoundTrip(t *testing.T) {
	epic := Epic{
		ID:       "EPIC-1",
		Title:    "Auth",
		Priority: PriorityHigh,
		Category: CategoryMVP,
		Stories: []Story{
			{ID: "EPIC-1-1", Title: "Login", Tags: []string{"mvp"}},
		},
		RegenerationNotes: "tightened scope",
	}

	data, err := json.Marshal(epic)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "story_count_target", "zero planning hint is omitted")

	var decoded Epic
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, epic, decoded)
}
