package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vishkar/storycrafter/internal/types"
)

func TestFormatFullContext(t *testing.T) {
	messages := []types.TranscriptMessage{
		{Role: "alex", Content: "We need user accounts."},
		{Role: "blake", Content: "Go backend, React frontend."},
	}

	out := FormatFullContext(messages, nil)

	assert.Contains(t, out, "### 3-AGENT CONSENSUS DISCUSSION")
	assert.Contains(t, out, "## ALEX\nWe need user accounts.")
	assert.Contains(t, out, "## BLAKE\nGo backend, React frontend.")
	assert.NotContains(t, out, "### PROJECT OVERVIEW", "no overview block without metadata")

	// Message order is preserved.
	assert.Less(t, strings.Index(out, "## ALEX"), strings.Index(out, "## BLAKE"))
}

func TestFormatFullContextWithMetadata(t *testing.T) {
	messages := []types.TranscriptMessage{
		{Role: "casey", Content: "Four week timeline."},
	}
	metadata := &types.ProjectMetadata{
		ProjectName: types.StringPtr("TaskFlow"),
	}

	out := FormatFullContext(messages, metadata)

	assert.Contains(t, out, "### PROJECT OVERVIEW")
	assert.Contains(t, out, "**Name**: TaskFlow")
	assert.Contains(t, out, "**Description**: N/A", "unset fields render as N/A")
	assert.Less(t, strings.Index(out, "### PROJECT OVERVIEW"), strings.Index(out, "### 3-AGENT CONSENSUS DISCUSSION"))
}

func TestFormatFullContextEmptyRole(t *testing.T) {
	out := FormatFullContext([]types.TranscriptMessage{
		{Role: "", Content: "orphan message"},
	}, nil)

	assert.Contains(t, out, "## UNKNOWN\norphan message")
}

func TestFormatDigest(t *testing.T) {
	digest := &types.RequirementsDigest{
		ProjectName:        types.StringPtr("TaskFlow"),
		ProjectDescription: types.StringPtr("A task manager."),
		MVPFeatures:        []string{"User accounts", "Task boards"},
	}

	out := FormatDigest(digest)

	assert.Contains(t, out, "**PROJECT**: TaskFlow")
	assert.Contains(t, out, "**DESCRIPTION**: A task manager.")
	assert.Contains(t, out, "**MVP FEATURES**:\n- User accounts\n- Task boards")
}

func TestFormatDigestEmpty(t *testing.T) {
	out := FormatDigest(&types.RequirementsDigest{})
	assert.Empty(t, out)
}
