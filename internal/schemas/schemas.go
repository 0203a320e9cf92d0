// Package schemas provides JSON Schema validation for sanitized generation
// output, enforcing the required field shapes before unmarshalling into the
// typed data model.
package schemas

const epicProperties = `{
	"id": {"type": "string", "minLength": 1},
	"title": {"type": "string", "minLength": 1},
	"description": {"type": "string"},
	"priority": {"type": "string", "enum": ["High", "Medium", "Low"]},
	"category": {"type": "string", "enum": ["MVP", "Post-MVP", "Technical"]},
	"story_count_target": {"type": "integer", "minimum": 1},
	"regeneration_notes": {"type": "string"}
}`

const storyProperties = `{
	"id": {"type": "string", "minLength": 1},
	"title": {"type": "string", "minLength": 1},
	"description": {"type": "string"},
	"acceptance_criteria": {"type": "array", "items": {"type": "string"}},
	"technical_tasks": {"type": "array", "items": {"type": "string"}},
	"priority": {"type": "string"},
	"story_points": {"type": "integer", "minimum": 0},
	"estimated_hours": {"type": "integer", "minimum": 0},
	"dependencies": {"type": "array", "items": {"type": "string"}},
	"tags": {"type": "array", "items": {"type": "string"}},
	"layer": {"type": "string", "enum": ["fullstack", "backend", "frontend", "database", "infrastructure"]},
	"regeneration_notes": {"type": "string"}
}`

// epicSchema validates a single epic object. Stories are deliberately not
// part of the planner contract; phase 1 emits structure only.
const epicSchema = `{
	"type": "object",
	"required": ["id", "title", "description", "priority", "category"],
	"properties": ` + epicProperties + `
}`

const epicListSchema = `{
	"type": "array",
	"minItems": 1,
	"items": ` + epicSchema + `
}`

const storySchema = `{
	"type": "object",
	"required": ["id", "title"],
	"properties": ` + storyProperties + `
}`

const storyListSchema = `{
	"type": "array",
	"minItems": 1,
	"items": ` + storySchema + `
}`
