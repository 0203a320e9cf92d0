package types

import (
	"github.com/go-playground/validator/v10"
)

// GenerateBacklogRequest asks for a complete backlog from a transcript.
type GenerateBacklogRequest struct {
	ConsensusMessages []TranscriptMessage `json:"consensus_messages" validate:"required,min=1,dive"`
	ProjectMetadata   *ProjectMetadata    `json:"project_metadata,omitempty"`
	UseFullContext    *bool               `json:"use_full_context,omitempty"`
}

// FullContext reports whether full-context mode is requested. The legacy
// extraction mode must be opted into explicitly; the default is full context.
func (r *GenerateBacklogRequest) FullContext() bool {
	return r.UseFullContext == nil || *r.UseFullContext
}

// GenerateEpicsRequest asks for the phase-1 epic structure only.
type GenerateEpicsRequest struct {
	ConsensusMessages []TranscriptMessage `json:"consensus_messages" validate:"required,min=1,dive"`
	ProjectMetadata   *ProjectMetadata    `json:"project_metadata,omitempty"`
}

// GenerateStoriesRequest asks for stories for a single epic.
type GenerateStoriesRequest struct {
	Epic              Epic                `json:"epic"`
	ConsensusMessages []TranscriptMessage `json:"consensus_messages" validate:"required,min=1,dive"`
	ProjectMetadata   *ProjectMetadata    `json:"project_metadata,omitempty"`
}

// RegenerateEpicRequest asks for a revised version of one epic.
type RegenerateEpicRequest struct {
	Epic              Epic                `json:"epic"`
	UserFeedback      string              `json:"user_feedback" validate:"required"`
	ConsensusMessages []TranscriptMessage `json:"consensus_messages" validate:"required,min=1,dive"`
	ProjectMetadata   *ProjectMetadata    `json:"project_metadata,omitempty"`
}

// RegenerateStoryRequest asks for a revised version of one story.
type RegenerateStoryRequest struct {
	Epic              Epic                `json:"epic"`
	Story             Story               `json:"story"`
	UserFeedback      string              `json:"user_feedback" validate:"required"`
	ConsensusMessages []TranscriptMessage `json:"consensus_messages" validate:"required,min=1,dive"`
	ProjectMetadata   *ProjectMetadata    `json:"project_metadata,omitempty"`
}

// Validate validates the GenerateBacklogRequest using the validator.
func (r *GenerateBacklogRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateEpicsRequest using the validator.
func (r *GenerateEpicsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateStoriesRequest using the validator.
func (r *GenerateStoriesRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RegenerateEpicRequest using the validator.
func (r *RegenerateEpicRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RegenerateStoryRequest using the validator.
func (r *RegenerateStoryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
