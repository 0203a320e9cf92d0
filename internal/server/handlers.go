package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/vishkar/storycrafter/internal/types"
)

// handleGenerateBacklog generates a complete backlog from a consensus
// transcript.
func (s *Server) handleGenerateBacklog(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateBacklogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.service.Generate(r.Context(), req.ConsensusMessages, req.ProjectMetadata, req.FullContext())
	if err != nil {
		s.serviceError(w, err, "Backlog generation failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"backlog": result,
		"metadata": map[string]any{
			"total_epics":           result.Metadata.TotalEpics,
			"total_stories":         result.Metadata.TotalStories,
			"total_estimated_hours": result.Metadata.TotalEstimatedHours,
			"generated_at":          result.Metadata.GeneratedAt,
		},
	})
}

// handleGenerateEpics generates the epic structure only (phase 1).
func (s *Server) handleGenerateEpics(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateEpicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	epics, err := s.service.GenerateEpics(r.Context(), req.ConsensusMessages, req.ProjectMetadata)
	if err != nil {
		s.serviceError(w, err, "Epic generation failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"epics":   epics,
		"metadata": map[string]any{
			"total_epics":  len(epics),
			"generated_at": utcNow(),
		},
	})
}

// handleGenerateStories generates stories for a single epic (phase 2).
func (s *Server) handleGenerateStories(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateStoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stories, err := s.service.GenerateStories(r.Context(), req.Epic, req.ConsensusMessages, req.ProjectMetadata)
	if err != nil {
		s.serviceError(w, err, "Story generation failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"stories": stories,
		"metadata": map[string]any{
			"epic_id":       req.Epic.ID,
			"total_stories": len(stories),
			"generated_at":  utcNow(),
		},
	})
}

// handleRegenerateEpic regenerates a single epic from user feedback.
func (s *Server) handleRegenerateEpic(w http.ResponseWriter, r *http.Request) {
	var req types.RegenerateEpicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	epic, err := s.service.RegenerateEpic(r.Context(), req.Epic, req.UserFeedback, req.ConsensusMessages, req.ProjectMetadata)
	if err != nil {
		s.serviceError(w, err, "Epic regeneration failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"epic":    epic,
		"metadata": map[string]any{
			"regenerated_at": utcNow(),
		},
	})
}

// handleRegenerateStory regenerates a single story from user feedback.
func (s *Server) handleRegenerateStory(w http.ResponseWriter, r *http.Request) {
	var req types.RegenerateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	story, err := s.service.RegenerateStory(r.Context(), req.Epic, req.Story, req.UserFeedback, req.ConsensusMessages, req.ProjectMetadata)
	if err != nil {
		s.serviceError(w, err, "Story regeneration failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"story":   story,
		"metadata": map[string]any{
			"regenerated_at": utcNow(),
		},
	})
}

// serviceError maps a service failure to its status code. Caller-fault
// errors surface verbatim; everything else is prefixed with which
// operation failed.
func (s *Server) serviceError(w http.ResponseWriter, err error, operation string) {
	status := HTTPStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = fmt.Sprintf("%s: %v", operation, err)
	}
	log.Printf("%s (status %d): %v", operation, status, err)
	s.errorResponse(w, status, message)
}

func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
