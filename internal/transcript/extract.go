// Package transcript turns raw consensus discussions into prompt-ready
// context and a best-effort requirements digest.
package transcript

import (
	"regexp"
	"strings"

	"github.com/vishkar/storycrafter/internal/types"
)

// minFeatureLength filters out list fragments too short to be a feature.
const minFeatureLength = 10

// techKeywords are the stack categories scanned for in architect messages.
var techKeywords = []string{"frontend", "backend", "database", "framework", "library"}

var (
	projectNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Project:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Project Name:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Building\s+(?:a|an)\s+([^\n]+)`),
	}
	listItemRe  = regexp.MustCompile(`^\d+\.`)
	listMarkRe  = regexp.MustCompile(`^(?:[-*•]+|\d+\.)\s*`)
	timelineRe  = regexp.MustCompile(`(?i)(\d+(?:-\d+)?)\s+(week|month)s?`)
	teamSizeRe  = regexp.MustCompile(`(?i)(\d+(?:-\d+)?)\s+(?:developer|dev)s?`)
	techValueRe = map[string]*regexp.Regexp{}
)

func init() {
	for _, kw := range techKeywords {
		techValueRe[kw] = regexp.MustCompile(`(?i)` + kw + `(?::\s*|\s+(?:using|with)\s+)([^\n,]+)`)
	}
}

// Extract walks the transcript once and pulls structured hints out of it.
// Caller-supplied metadata overrides anything extracted from the text.
// Extraction is best-effort: a pattern that never matches simply leaves the
// corresponding field nil.
func Extract(messages []types.TranscriptMessage, metadata *types.ProjectMetadata) *types.RequirementsDigest {
	digest := &types.RequirementsDigest{
		TechStack: make(map[string]string),
	}

	for _, msg := range messages {
		role := strings.ToLower(msg.Role)
		content := msg.Content
		lower := strings.ToLower(content)

		switch role {
		case types.RoleSystem:
			if strings.Contains(lower, "project:") {
				if name := extractProjectName(content); name != "" {
					digest.ProjectName = types.StringPtr(name)
				}
				digest.ProjectDescription = types.StringPtr(content)
			}

		case types.RoleProduct:
			digest.ProductRequirements = append(digest.ProductRequirements, content)
			if strings.Contains(lower, "mvp") || strings.Contains(lower, "core feature") {
				digest.MVPFeatures = append(digest.MVPFeatures, extractFeatures(content)...)
			}

		case types.RoleTech:
			digest.TechnicalRequirements = append(digest.TechnicalRequirements, content)
			for _, keyword := range techKeywords {
				if !strings.Contains(lower, keyword) {
					continue
				}
				if value := extractTechValue(content, keyword); value != "" {
					digest.TechStack[keyword] = value
				}
			}

		case types.RoleProject:
			digest.ProjectRequirements = append(digest.ProjectRequirements, content)
			if strings.Contains(lower, "week") || strings.Contains(lower, "month") {
				if timeline := timelineRe.FindString(content); timeline != "" {
					digest.Timeline = types.StringPtr(timeline)
				}
			}
			if strings.Contains(lower, "developer") || strings.Contains(lower, "team") {
				if team := teamSizeRe.FindString(content); team != "" {
					digest.TeamSize = types.StringPtr(team)
				}
			}
		}
	}

	applyMetadata(digest, metadata)
	return digest
}

// applyMetadata overlays caller-supplied metadata onto the digest. Supplied
// values always win over extracted ones.
func applyMetadata(digest *types.RequirementsDigest, metadata *types.ProjectMetadata) {
	if metadata == nil {
		return
	}
	if metadata.ProjectName != nil {
		digest.ProjectName = metadata.ProjectName
	}
	if metadata.ProjectDescription != nil {
		digest.ProjectDescription = metadata.ProjectDescription
	}
	if metadata.TargetUsers != nil {
		digest.TargetUsers = metadata.TargetUsers
	}
	if metadata.Platform != nil {
		digest.Platform = metadata.Platform
	}
	if metadata.Timeline != nil {
		digest.Timeline = metadata.Timeline
	}
	if metadata.TeamSize != nil {
		digest.TeamSize = metadata.TeamSize
	}
}

func extractProjectName(content string) string {
	for _, re := range projectNamePatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractFeatures collects bullet and numbered list items long enough to be
// candidate MVP features.
func extractFeatures(content string) []string {
	var features []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		isBullet := strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•")
		if !isBullet && !listItemRe.MatchString(line) {
			continue
		}
		feature := strings.TrimSpace(listMarkRe.ReplaceAllString(line, ""))
		if len(feature) > minFeatureLength {
			features = append(features, feature)
		}
	}
	return features
}

// extractTechValue captures the phrase following "keyword: value" or
// "keyword using/with value".
func extractTechValue(content, keyword string) string {
	if m := techValueRe[keyword].FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
