// Package audit scores acceptance-criteria quality. Findings are advisory:
// the auditor logs and reports warnings but never fails a generation.
package audit

import (
	"fmt"
	"log"
	"strings"

	"github.com/vishkar/storycrafter/internal/types"
)

// maxLoggedWarnings caps the per-backlog warning log output.
const maxLoggedWarnings = 5

// Config holds the audit thresholds. The defaults are heuristic rather
// than load-bearing, so they are tunable instead of hard-coded.
type Config struct {
	// MinCriteria is the count below which a story is flagged invalid.
	MinCriteria int
	// MaxCriteria is the count above which a warning (only) is emitted.
	MaxCriteria int
	// LowQualityThreshold is the quality score below which an improvement
	// recommendation is added.
	LowQualityThreshold int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MinCriteria:         4,
		MaxCriteria:         10,
		LowQualityThreshold: 2,
	}
}

// Indicators are the four boolean quality signals checked per criteria list.
type Indicators struct {
	HasGivenWhenThen      bool `json:"has_given_when_then"`
	HasEdgeCases          bool `json:"has_edge_cases"`
	HasNonFunctional      bool `json:"has_non_functional"`
	HasSpecificValidation bool `json:"has_specific_validation"`
}

// Result is the outcome of auditing one story's acceptance criteria.
type Result struct {
	IsValid       bool       `json:"is_valid"`
	Warnings      []string   `json:"warnings"`
	QualityScore  int        `json:"quality_score"`
	TotalCriteria int        `json:"total_criteria"`
	Indicators    Indicators `json:"quality_indicators"`
}

// BacklogReport aggregates audit results across a whole backlog.
type BacklogReport struct {
	TotalStories        int
	StoriesWithWarnings int
	Warnings            []string
}

var nonFunctionalTerms = []string{"performance", "security", "usability", "accessibility", "non-functional"}

// ValidateCriteria scores a single story's acceptance criteria against the
// configured thresholds and the four quality signals.
func (c Config) ValidateCriteria(criteria []string, storyID string) Result {
	result := Result{
		IsValid:       true,
		TotalCriteria: len(criteria),
	}

	if len(criteria) < c.MinCriteria {
		result.IsValid = false
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Story %s: Less than %d acceptance criteria (found %d)", storyID, c.MinCriteria, len(criteria)))
	}

	if len(criteria) > c.MaxCriteria {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Story %s: More than %d criteria may be too granular (found %d)", storyID, c.MaxCriteria, len(criteria)))
	}

	for _, criterion := range criteria {
		lower := strings.ToLower(criterion)

		if strings.Contains(lower, "given") && strings.Contains(lower, "when") && strings.Contains(lower, "then") {
			result.Indicators.HasGivenWhenThen = true
		}
		if strings.Contains(lower, "edge case") || strings.Contains(lower, "error") || strings.Contains(lower, "failure") {
			result.Indicators.HasEdgeCases = true
		}
		for _, term := range nonFunctionalTerms {
			if strings.Contains(lower, term) {
				result.Indicators.HasNonFunctional = true
				break
			}
		}
		if strings.Contains(lower, "validate") || strings.Contains(lower, "verify") {
			result.Indicators.HasSpecificValidation = true
		}
	}

	result.QualityScore = countTrue(
		result.Indicators.HasGivenWhenThen,
		result.Indicators.HasEdgeCases,
		result.Indicators.HasNonFunctional,
		result.Indicators.HasSpecificValidation,
	)

	if result.QualityScore < c.LowQualityThreshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Story %s: Low quality score (%d/4). Consider adding Given-When-Then format, edge cases, or non-functional requirements.",
				storyID, result.QualityScore))
	}

	return result
}

// AuditBacklog runs the criteria audit over every story in every epic and
// logs a capped summary. It never fails and never mutates the backlog.
func (c Config) AuditBacklog(backlog *types.Backlog) BacklogReport {
	log.Printf("[StoryCrafter] Validating acceptance criteria quality...")

	report := BacklogReport{}

	for _, epic := range backlog.Epics {
		for _, story := range epic.Stories {
			report.TotalStories++

			storyID := story.ID
			if storyID == "" {
				storyID = "unknown"
			}

			result := c.ValidateCriteria(story.AcceptanceCriteria, storyID)
			if len(result.Warnings) > 0 {
				report.StoriesWithWarnings++
				report.Warnings = append(report.Warnings, result.Warnings...)
			}
		}
	}

	if len(report.Warnings) == 0 {
		log.Printf("[StoryCrafter] All %d stories have quality acceptance criteria", report.TotalStories)
		return report
	}

	log.Printf("[StoryCrafter] Acceptance criteria validation: %d/%d stories have quality warnings",
		report.StoriesWithWarnings, report.TotalStories)
	for i, warning := range report.Warnings {
		if i >= maxLoggedWarnings {
			log.Printf("[StoryCrafter]   ... and %d more warnings", len(report.Warnings)-maxLoggedWarnings)
			break
		}
		log.Printf("[StoryCrafter]   - %s", warning)
	}

	return report
}

func countTrue(flags ...bool) int {
	count := 0
	for _, f := range flags {
		if f {
			count++
		}
	}
	return count
}
