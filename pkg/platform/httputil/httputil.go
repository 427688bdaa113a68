// Package httputil centralizes JSON response writing and request decoding so
// every handler renders the same envelopes.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
	"github.com/aprksy/jsonsvc/pkg/requestcontext"
)

// ErrorResponse is the JSON error envelope shared by all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope.
// Non-domain errors render as a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	WriteJSON(w, dErrors.ToHTTPStatus(code), ErrorResponse{
		Error:   string(code),
		Message: dErrors.MessageOf(err),
	})
}

// WriteFailure logs err at a severity matching its code, then writes the
// error envelope. scope names the domain for the log line.
func WriteFailure(w http.ResponseWriter, r *http.Request, logger *slog.Logger, scope string, err error) {
	ctx := r.Context()
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal || code == dErrors.CodeCorruptData {
		logger.ErrorContext(ctx, scope+" request failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	} else {
		logger.WarnContext(ctx, scope+" request rejected",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	WriteError(w, err)
}

// Normalizer is implemented by request types that canonicalize their fields
// (trimming, lowercasing) before validation.
type Normalizer interface {
	Normalize()
}

// Validator is implemented by request types that check their field schema.
type Validator interface {
	Validate() error
}

// Decode reads a JSON request body into T, then runs Normalize and Validate
// when T implements them. On failure it writes the error response and
// returns ok=false; the handler should simply return.
func Decode[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	ctx := r.Context()
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	if n, ok := any(&req).(Normalizer); ok {
		n.Normalize()
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "request failed validation",
				"request_id", requestcontext.RequestID(ctx),
				"error", err.Error(),
			)
			WriteError(w, err)
			return nil, false
		}
	}
	return &req, true
}
