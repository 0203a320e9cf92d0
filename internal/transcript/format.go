package transcript

import (
	"fmt"
	"strings"

	"github.com/vishkar/storycrafter/internal/types"
)

// FormatFullContext renders the transcript plus optional metadata into a
// single prompt-ready block. The rendering is deterministic and preserves
// role attribution and message order with no truncation; full fidelity is
// the point of full-context mode.
func FormatFullContext(messages []types.TranscriptMessage, metadata *types.ProjectMetadata) string {
	var parts []string

	if metadata != nil {
		parts = append(parts, "### PROJECT OVERVIEW")
		parts = append(parts, fmt.Sprintf("**Name**: %s", orNA(metadata.ProjectName)))
		parts = append(parts, fmt.Sprintf("**Description**: %s", orNA(metadata.ProjectDescription)))
		parts = append(parts, "")
	}

	parts = append(parts, "### 3-AGENT CONSENSUS DISCUSSION", "")

	for _, msg := range messages {
		role := strings.ToUpper(msg.Role)
		if role == "" {
			role = "UNKNOWN"
		}
		parts = append(parts, fmt.Sprintf("## %s", role), msg.Content, "")
	}

	return strings.Join(parts, "\n")
}

// FormatDigest renders a requirements digest into readable prompt text for
// the legacy extraction-only generation mode.
func FormatDigest(digest *types.RequirementsDigest) string {
	var parts []string

	if digest.ProjectName != nil && *digest.ProjectName != "" {
		parts = append(parts, fmt.Sprintf("**PROJECT**: %s", *digest.ProjectName))
	}
	if digest.ProjectDescription != nil && *digest.ProjectDescription != "" {
		parts = append(parts, fmt.Sprintf("**DESCRIPTION**: %s", *digest.ProjectDescription))
	}
	if len(digest.MVPFeatures) > 0 {
		lines := make([]string, 0, len(digest.MVPFeatures))
		for _, f := range digest.MVPFeatures {
			lines = append(lines, "- "+f)
		}
		parts = append(parts, "**MVP FEATURES**:\n"+strings.Join(lines, "\n"))
	}

	return strings.Join(parts, "\n\n")
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
