package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response wrapper used by every JSON endpoint.
// Status is true for successful responses and false for failures, so
// clients can branch uniformly without inspecting the HTTP status line.
type Envelope struct {
	Code   int  `json:"code"`
	Status bool `json:"status"`
	Data   any  `json:"data"`
}

// RespondWithSuccess writes a 200 envelope with the given data payload.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, data any) {
	writeEnvelope(w, r, http.StatusOK, Envelope{
		Code:   http.StatusOK,
		Status: true,
		Data:   data,
	})
}

// RespondWithError writes a failure envelope carrying a human-readable
// message as its data payload.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	// 5xx responses are operational failures; 4xx are routine client
	// errors and stay at debug.
	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	writeEnvelope(w, r, status, Envelope{
		Code:   status,
		Status: false,
		Data:   message,
	})
}

// RespondWithErrorAndLog writes a failure envelope and logs the underlying
// error alongside it for correlation.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		traceID := GetTraceID(r.Context())

		logLevel := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			logLevel = slog.LevelError
		}

		slog.LogAttrs(r.Context(), logLevel, "request failed",
			slog.Int("status_code", status),
			slog.String("trace_id", traceID),
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method),
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	RespondWithError(w, r, status, message)
}

// writeEnvelope serializes the envelope with the given HTTP status code.
func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path)
	}
}
