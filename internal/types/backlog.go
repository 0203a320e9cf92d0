package types

// Epic priority values emitted by the generator.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Epic category values.
const (
	CategoryMVP     = "MVP"
	CategoryPostMVP = "Post-MVP"
	CategoryTech    = "Technical"
)

// DefaultStoryCountTarget is the number of stories requested for an epic
// when the planner did not supply a target.
const DefaultStoryCountTarget = 4

// Epic is a top-level grouping of related stories. The ID is assigned at
// generation time (EPIC-<n>) and is immutable afterward; regeneration must
// echo it back unchanged.
type Epic struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Priority         string  `json:"priority"`
	Category         string  `json:"category"`
	StoryCountTarget int     `json:"story_count_target,omitempty"`
	Stories          []Story `json:"stories,omitempty"`

	// RegenerationNotes is only populated on regenerated epics.
	RegenerationNotes string `json:"regeneration_notes,omitempty"`
}

// TargetStoryCount returns the story count the expander should request,
// falling back to the default when the planner omitted the hint.
func (e *Epic) TargetStoryCount() int {
	if e.StoryCountTarget > 0 {
		return e.StoryCountTarget
	}
	return DefaultStoryCountTarget
}

// Story is a single user-facing unit of work. IDs follow the
// <epic-id>-<n> convention but uniqueness is a quality signal, not an
// enforced invariant.
type Story struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	TechnicalTasks     []string `json:"technical_tasks,omitempty"`
	Priority           string   `json:"priority,omitempty"`
	StoryPoints        int      `json:"story_points,omitempty"`
	EstimatedHours     int      `json:"estimated_hours,omitempty"`
	Dependencies       []string `json:"dependencies,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	Layer              string   `json:"layer,omitempty"`

	// RegenerationNotes is only populated on regenerated stories.
	RegenerationNotes string `json:"regeneration_notes,omitempty"`
}

// ProjectInfo is the project block of an assembled backlog.
type ProjectInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetUsers string `json:"target_users"`
	Platform    string `json:"platform"`
}

// BacklogMetadata carries aggregate metrics recomputed at assembly time.
// The totals are derived from the epic tree and are never taken from
// upstream generator output.
type BacklogMetadata struct {
	TotalEpics          int    `json:"total_epics"`
	TotalStories        int    `json:"total_stories"`
	TotalEstimatedHours int    `json:"total_estimated_hours"`
	GeneratedAt         string `json:"generated_at"`
	Generator           string `json:"generator"`
}

// Backlog is the final assembled document returned to callers.
type Backlog struct {
	Project  ProjectInfo     `json:"project"`
	Metadata BacklogMetadata `json:"metadata"`
	Epics    []Epic          `json:"epics"`
}
