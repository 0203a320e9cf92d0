package backlog

import (
	"time"

	"github.com/vishkar/storycrafter/internal/types"
)

// Assemble merges expanded epics and project metadata into the final
// backlog document. Totals are always recomputed from the epic tree, never
// trusted from upstream output, so they reflect the actual result even if
// the model's own counts disagree. The transient story_count_target hint is
// stripped from every epic.
func Assemble(epics []types.Epic, metadata *types.ProjectMetadata) *types.Backlog {
	totalStories := 0
	totalHours := 0

	out := make([]types.Epic, 0, len(epics))
	for _, epic := range epics {
		totalStories += len(epic.Stories)
		for _, story := range epic.Stories {
			totalHours += story.EstimatedHours
		}
		epic.StoryCountTarget = 0
		out = append(out, epic)
	}

	return &types.Backlog{
		Project: projectInfo(metadata),
		Metadata: types.BacklogMetadata{
			TotalEpics:          len(out),
			TotalStories:        totalStories,
			TotalEstimatedHours: totalHours,
			GeneratedAt:         time.Now().UTC().Format(time.RFC3339),
			Generator:           generatorName,
		},
		Epics: out,
	}
}

func projectInfo(metadata *types.ProjectMetadata) types.ProjectInfo {
	info := types.ProjectInfo{Name: "Project"}
	if metadata == nil {
		return info
	}
	if metadata.ProjectName != nil && *metadata.ProjectName != "" {
		info.Name = *metadata.ProjectName
	}
	if metadata.ProjectDescription != nil {
		info.Description = *metadata.ProjectDescription
	}
	if metadata.TargetUsers != nil {
		info.TargetUsers = *metadata.TargetUsers
	}
	if metadata.Platform != nil {
		info.Platform = *metadata.Platform
	}
	return info
}
