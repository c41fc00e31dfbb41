// Package respond writes JSON responses and maps application errors to the
// single-field {"message": ...} error body returned to clients.
// Internal error detail is logged after masking credentials and never
// written to the response.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsbrief/internal/observability/logging"
)

// InternalErrorMessage is returned for errors that carry no user message.
const InternalErrorMessage = "internal server error"

// MessageBody is the JSON body of every error response.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// ヘッダー送信済みのためログのみ
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Raw writes body unchanged as a JSON response.
// Used to pass provider payloads through byte-for-byte.
func Raw(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Default().Warn("failed to write response body",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Message writes {"message": msg} with the given status code.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, MessageBody{Message: msg})
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// SafeError writes err as {"message": ...}.
// An AppError contributes its code and user message; its cause is logged
// with credentials masked. Any other error becomes a 500 with a generic
// message.
func SafeError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	logger := logging.ForRequest(r.Context(), logging.FromContext(r.Context()))

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			level := slog.LevelError
			if appErr.Code < http.StatusInternalServerError {
				level = slog.LevelInfo
			}
			logger.Log(r.Context(), level, "request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		Message(w, appErr.Code, appErr.UserMsg)
		return
	}

	logger.Error("internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", SanitizeError(err)))
	Message(w, http.StatusInternalServerError, InternalErrorMessage)
}
