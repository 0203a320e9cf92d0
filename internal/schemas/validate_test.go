package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validEpic = `{
	"id": "EPIC-1",
	"title": "Authentication",
	"description": "User accounts and sessions.",
	"priority": "High",
	"category": "MVP",
	"story_count_target": 3
}`

const validStory = `{
	"id": "EPIC-1-1",
	"title": "Login",
	"acceptance_criteria": ["GIVEN x WHEN y THEN z"],
	"story_points": 3,
	"layer": "backend"
}`

func TestValidateEpic(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid epic", validEpic, false},
		{"Extra fields tolerated", `{"id": "E", "title": "t", "description": "d", "priority": "Low", "category": "Technical", "extra": 1}`, false},
		{"Missing required fields", `{"id": "EPIC-1"}`, true},
		{"Empty id", `{"id": "", "title": "t", "description": "d", "priority": "High", "category": "MVP"}`, true},
		{"Bad priority enum", `{"id": "E", "title": "t", "description": "d", "priority": "Urgent", "category": "MVP"}`, true},
		{"Bad category enum", `{"id": "E", "title": "t", "description": "d", "priority": "High", "category": "Core"}`, true},
		{"Array instead of object", `[]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEpic(json.RawMessage(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEpicList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid list", `[` + validEpic + `]`, false},
		{"Empty list rejected", `[]`, true},
		{"One bad entry fails the list", `[` + validEpic + `, {"id": "EPIC-2"}]`, true},
		{"Object instead of array", validEpic, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEpicList(json.RawMessage(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid story", validStory, false},
		{"Only required fields", `{"id": "S-1", "title": "t"}`, false},
		{"Missing title", `{"id": "S-1"}`, true},
		{"Bad layer enum", `{"id": "S-1", "title": "t", "layer": "cloud"}`, true},
		{"Non-string criteria entry", `{"id": "S-1", "title": "t", "acceptance_criteria": [1]}`, true},
		{"Negative story points", `{"id": "S-1", "title": "t", "story_points": -1}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStory(json.RawMessage(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStoryList(t *testing.T) {
	err := ValidateStoryList(json.RawMessage(`[` + validStory + `, {"id": "S-2", "title": "Logout"}]`))
	assert.NoError(t, err)

	err = ValidateStoryList(json.RawMessage(`[]`))
	assert.Error(t, err)
}

func TestValidationErrorDetails(t *testing.T) {
	err := ValidateEpic(json.RawMessage(`{"id": "EPIC-1", "priority": "Urgent"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "schema validation failed")
}
