package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/vishkar/storycrafter/internal/parsing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "Input error maps to 400",
			err:      &parsing.InputError{Message: "epic id is required"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "Wrapped input error maps to 400",
			err:      fmt.Errorf("regenerating: %w", &parsing.InputError{Message: "feedback"}),
			expected: http.StatusBadRequest,
		},
		{
			name:     "Parse error maps to 502",
			err:      &parsing.ParseError{Message: "not a JSON array"},
			expected: http.StatusBadGateway,
		},
		{
			name:     "Wrapped parse error maps to 502",
			err:      fmt.Errorf("expanding EPIC-1: %w", &parsing.ParseError{Message: "bad"}),
			expected: http.StatusBadGateway,
		},
		{
			name:     "Unknown error maps to 500",
			err:      errors.New("backend timeout"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}

	// Validator errors from request structs map to 400.
	err := validator.New().Struct(struct {
		Name string `validate:"required"`
	}{})
	var validationErrs validator.ValidationErrors
	if assert.True(t, errors.As(err, &validationErrs)) {
		assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	}
}
