package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application. Every failure
// crossing a component boundary is wrapped into one of the constructors
// below; Raw keeps the original cause for diagnostics.
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Timestamp time.Time
}

func newAppError(raw error, httpCode int, code ErrorCode, message string) AppError {
	return AppError{
		Raw:       raw,
		HTTPCode:  httpCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (e AppError) Unwrap() error {
	return e.Raw
}

// ClientMessage is the text surfaced to API callers. Upstream, parse and
// persistence failures surface the underlying message verbatim; validation
// errors surface their own message.
func (e AppError) ClientMessage() string {
	if e.Raw != nil {
		return e.Raw.Error()
	}
	return e.Message
}

// Validation Errors (HTTP 400)

func ErrNoFileProvided() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_VALIDATION_NO_FILE, "No file provided")
}

func ErrNoFileSelected() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_VALIDATION_NO_FILENAME, "No file selected")
}

func ErrUnsupportedFormat() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_VALIDATION_UNSUPPORTED_FORMAT, "Only MP3 files are supported")
}

// Upstream Errors (HTTP 500)

func ErrTranscriptionFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_UPSTREAM_TRANSCRIPTION_FAILED, "Audio transcription failed")
}

func ErrSummaryGenerationFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_UPSTREAM_GENERATION_FAILED, "Failed to generate summary")
}

// Parse Errors (HTTP 500)

func ErrUnexpectedResponseFormat() AppError {
	return newAppError(
		fmt.Errorf("unexpected response format from generation provider"),
		http.StatusInternalServerError,
		ErrorCode_PARSE_FAILED,
		"Unexpected response format",
	)
}

// Persistence Errors (HTTP 500)

func ErrPersistenceFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_PERSISTENCE_FAILED, "Failed to store meeting record")
}

// General Errors

func ErrInternal(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error")
}

func ErrNotFound(resource string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_NOT_FOUND, fmt.Sprintf("%s not found", resource))
}

func ErrInvalidArgument(message string) AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, message)
}

func ErrDBConnectionFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_DB_CONNECTION_FAILED, "Database connection failed")
}
