package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		key      string
		contains string
	}{
		{"Epic structure", "backlog.json", "epic-structure", "{{.FullContext}}"},
		{"Stories for epic", "backlog.json", "stories-for-epic", "{{.TargetCount}}"},
		{"Legacy backlog", "backlog.json", "legacy-backlog", "{{.Requirements}}"},
		{"Regenerate epic", "regen.json", "regenerate-epic", "{{.UserFeedback}}"},
		{"Regenerate story", "regen.json", "regenerate-story", "{{.CurrentCriteria}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template, err := Get(tt.filename, tt.key)
			require.NoError(t, err)
			assert.Contains(t, template, tt.contains)
		})
	}
}

func TestGetErrors(t *testing.T) {
	_, err := Get("backlog.json", "nonexistent")
	assert.Error(t, err)

	_, err = Get("missing.json", "epic-structure")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("backlog.json", "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{
			name:     "Single placeholder",
			template: "Epic: {{.EpicID}}",
			data:     map[string]string{"EpicID": "EPIC-1"},
			expected: "Epic: EPIC-1",
		},
		{
			name:     "Repeated placeholder",
			template: "{{.EpicID}} and again {{.EpicID}}",
			data:     map[string]string{"EpicID": "EPIC-1"},
			expected: "EPIC-1 and again EPIC-1",
		},
		{
			name:     "Unknown placeholders left intact",
			template: "{{.Known}} {{.Unknown}}",
			data:     map[string]string{"Known": "v"},
			expected: "v {{.Unknown}}",
		},
		{
			name:     "Empty data",
			template: "no placeholders",
			data:     nil,
			expected: "no placeholders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestFormatStoriesForEpic(t *testing.T) {
	prompt := Format(MustGet("backlog.json", "stories-for-epic"), map[string]string{
		"TargetCount":     "4",
		"EpicID":          "EPIC-1",
		"EpicTitle":       "Authentication",
		"EpicDescription": "Accounts and sessions.",
		"FullContext":     "## ALEX\nWe need accounts.",
	})

	assert.Contains(t, prompt, "Generate 4 DETAILED USER STORIES")
	assert.Contains(t, prompt, "**ID**: EPIC-1")
	assert.Contains(t, prompt, "We need accounts.")
	assert.NotContains(t, prompt, "{{.", "all placeholders should be substituted")
}
