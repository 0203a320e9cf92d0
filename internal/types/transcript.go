// Package types defines the shared value objects for the StoryCrafter service.
package types

// Consensus discussion roles. Alex speaks for product, Blake for
// architecture, Casey for project management.
const (
	RoleSystem  = "system"
	RoleProduct = "alex"
	RoleTech    = "blake"
	RoleProject = "casey"
)

// TranscriptMessage is a single role-tagged message from the consensus
// discussion. Message order is chronological and must be preserved.
type TranscriptMessage struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ProjectMetadata is optional caller-supplied project context. Nil fields
// mean "not provided", as opposed to provided-but-empty.
type ProjectMetadata struct {
	ProjectName        *string `json:"project_name,omitempty"`
	ProjectDescription *string `json:"project_description,omitempty"`
	TargetUsers        *string `json:"target_users,omitempty"`
	Platform           *string `json:"platform,omitempty"`
	Timeline           *string `json:"timeline,omitempty"`
	TeamSize           *string `json:"team_size,omitempty"`
}

// RequirementsDigest is the ephemeral result of heuristic extraction over a
// transcript. It is rebuilt for every request and never persisted; it feeds
// legacy-mode prompts and diagnostics only. Nil string fields mean the
// pattern never matched.
type RequirementsDigest struct {
	ProjectName        *string
	ProjectDescription *string
	TargetUsers        *string
	Platform           *string
	Timeline           *string
	TeamSize           *string

	TechStack   map[string]string
	MVPFeatures []string

	ProductRequirements   []string
	TechnicalRequirements []string
	ProjectRequirements   []string
}

// StringPtr returns a pointer to s. Convenience for building metadata.
func StringPtr(s string) *string {
	return &s
}
