package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishkar/storycrafter/internal/types"
)

func consensusFixture() []types.TranscriptMessage {
	return []types.TranscriptMessage{
		{
			Role:    "system",
			Content: "Project: TaskFlow\nA collaborative task management tool for small teams.",
		},
		{
			Role: "alex",
			Content: "For the MVP we need these core features:\n" +
				"- User registration and login\n" +
				"- Create and assign tasks to teammates\n" +
				"- Real-time task status updates\n" +
				"1. Kanban board view of all tasks\n" +
				"- UI\n",
		},
		{
			Role:    "blake",
			Content: "Frontend: React with TypeScript\nBackend: Go with chi\nDatabase: PostgreSQL",
		},
		{
			Role:    "casey",
			Content: "With 2 developers on the team we can ship the MVP in 4 weeks.",
		},
	}
}

func TestExtract(t *testing.T) {
	digest := Extract(consensusFixture(), nil)

	require.NotNil(t, digest.ProjectName)
	assert.Equal(t, "TaskFlow", *digest.ProjectName)

	assert.Equal(t, []string{
		"User registration and login",
		"Create and assign tasks to teammates",
		"Real-time task status updates",
		"Kanban board view of all tasks",
	}, digest.MVPFeatures, "short list items should be filtered out")

	assert.Equal(t, "React with TypeScript", digest.TechStack["frontend"])
	assert.Equal(t, "Go with chi", digest.TechStack["backend"])
	assert.Equal(t, "PostgreSQL", digest.TechStack["database"])

	require.NotNil(t, digest.Timeline)
	assert.Equal(t, "4 weeks", *digest.Timeline)
	require.NotNil(t, digest.TeamSize)
	assert.Equal(t, "2 developers", *digest.TeamSize)

	assert.Len(t, digest.ProductRequirements, 1)
	assert.Len(t, digest.TechnicalRequirements, 1)
	assert.Len(t, digest.ProjectRequirements, 1)
}

func TestExtractProjectNamePatterns(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"Project prefix", "Project: Atlas", "Atlas"},
		{"Case insensitive", "project: atlas crm", "atlas crm"},
		{"Name stops at newline", "Project: Atlas\nA CRM for freelancers.", "Atlas"},
		{"Whitespace trimmed", "Project:   Atlas  ", "Atlas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := Extract([]types.TranscriptMessage{
				{Role: "system", Content: tt.content},
			}, nil)
			require.NotNil(t, digest.ProjectName)
			assert.Equal(t, tt.expected, *digest.ProjectName)
		})
	}
}

func TestExtractSystemMessageWithoutTrigger(t *testing.T) {
	// Only system messages that mention "project:" contribute the name
	// and description.
	digest := Extract([]types.TranscriptMessage{
		{Role: "system", Content: "You are facilitating a consensus discussion."},
	}, nil)

	assert.Nil(t, digest.ProjectName)
	assert.Nil(t, digest.ProjectDescription)
}

func TestExtractRangeEstimates(t *testing.T) {
	digest := Extract([]types.TranscriptMessage{
		{Role: "casey", Content: "Plan for 6-8 weeks with a team of 3-4 developers."},
	}, nil)

	require.NotNil(t, digest.Timeline)
	assert.Equal(t, "6-8 weeks", *digest.Timeline)
	require.NotNil(t, digest.TeamSize)
	assert.Equal(t, "3-4 developers", *digest.TeamSize)
}

func TestExtractMetadataOverrides(t *testing.T) {
	metadata := &types.ProjectMetadata{
		ProjectName: types.StringPtr("Override"),
		Platform:    types.StringPtr("web"),
	}

	digest := Extract(consensusFixture(), metadata)

	require.NotNil(t, digest.ProjectName)
	assert.Equal(t, "Override", *digest.ProjectName, "caller metadata should win over extraction")
	require.NotNil(t, digest.Platform)
	assert.Equal(t, "web", *digest.Platform)

	// Fields the metadata does not set keep their extracted values.
	require.NotNil(t, digest.Timeline)
	assert.Equal(t, "4 weeks", *digest.Timeline)
}

func TestExtractUnknownRolesIgnored(t *testing.T) {
	digest := Extract([]types.TranscriptMessage{
		{Role: "moderator", Content: "Project: Ghost\n- A feature nobody should see"},
	}, nil)

	assert.Nil(t, digest.ProjectName)
	assert.Empty(t, digest.MVPFeatures)
	assert.Empty(t, digest.ProductRequirements)
}

func TestExtractEmptyTranscript(t *testing.T) {
	digest := Extract(nil, nil)

	assert.Nil(t, digest.ProjectName)
	assert.NotNil(t, digest.TechStack)
	assert.Empty(t, digest.TechStack)
}
