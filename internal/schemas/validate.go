package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError reports schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

var (
	epicListLoader  = gojsonschema.NewStringLoader(epicListSchema)
	epicLoader      = gojsonschema.NewStringLoader(epicSchema)
	storyListLoader = gojsonschema.NewStringLoader(storyListSchema)
	storyLoader     = gojsonschema.NewStringLoader(storySchema)
)

// ValidateEpicList checks that raw JSON is an array of epic objects with
// all required fields.
func ValidateEpicList(raw json.RawMessage) error {
	return validate(epicListLoader, raw)
}

// ValidateEpic checks a single epic object.
func ValidateEpic(raw json.RawMessage) error {
	return validate(epicLoader, raw)
}

// ValidateStoryList checks that raw JSON is an array of story objects.
func ValidateStoryList(raw json.RawMessage) error {
	return validate(storyListLoader, raw)
}

// ValidateStory checks a single story object.
func ValidateStory(raw json.RawMessage) error {
	return validate(storyLoader, raw)
}

func validate(schema gojsonschema.JSONLoader, raw json.RawMessage) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}
