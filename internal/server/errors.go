package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vishkar/storycrafter/internal/parsing"
)

// HTTPStatus maps service errors to response status codes. Malformed
// caller input is the caller's fault (400); model output that cannot be
// recovered into valid JSON is an upstream failure (502); anything else is
// an internal error.
func HTTPStatus(err error) int {
	var inputErr *parsing.InputError
	var parseErr *parsing.ParseError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &parseErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
