// Package shared holds the JSON response helpers every handler uses so
// error shapes stay uniform across the API surface.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "kleingarten/pkg/domain-errors"
)

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteJSON writes v with the given status. Encoding failures are ignored;
// the status line is already on the wire.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a coded domain error onto an HTTP status and writes the
// uniform error body. Unknown errors are reported as internal without
// leaking detail.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, statusOf(err), ErrorResponse{
		Error:       string(dErrors.CodeOf(err)),
		Description: dErrors.MessageOf(err),
	})
}

func statusOf(err error) int {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeValidation, dErrors.CodeInvariantViolation:
		return http.StatusUnprocessableEntity
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
