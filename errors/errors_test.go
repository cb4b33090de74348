package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		err     AppError
		message string
	}{
		{ErrNoFileProvided(), "No file provided"},
		{ErrNoFileSelected(), "No file selected"},
		{ErrUnsupportedFormat(), "Only MP3 files are supported"},
	}

	for _, tc := range cases {
		assert.Equal(t, http.StatusBadRequest, tc.err.HTTPCode)
		assert.Equal(t, tc.message, tc.err.ClientMessage())
		assert.Nil(t, tc.err.Raw)
	}
}

func TestWrappedErrorsSurfaceRawMessage(t *testing.T) {
	cause := stdErrors.New("upstream exploded")

	for _, err := range []AppError{
		ErrTranscriptionFailed(cause),
		ErrSummaryGenerationFailed(cause),
		ErrPersistenceFailed(cause),
	} {
		assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
		assert.Equal(t, "upstream exploded", err.ClientMessage())
		assert.True(t, stdErrors.Is(err, cause))
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := ErrUnexpectedResponseFormat()
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
	assert.Contains(t, err.ClientMessage(), "unexpected response format")
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "PARSE_FAILED", ErrorCode_PARSE_FAILED.String())
	assert.Equal(t, "UNKNOWN", ErrorCode(0).String())
}

func TestErrorCodeRanges(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want ErrorCode
	}{
		{ErrorCode_INTERNAL, 1000},
		{ErrorCode_NOT_FOUND, 1001},
		{ErrorCode_INVALID_ARGUMENT, 1002},
		{ErrorCode_VALIDATION_NO_FILE, 2000},
		{ErrorCode_VALIDATION_NO_FILENAME, 2001},
		{ErrorCode_VALIDATION_UNSUPPORTED_FORMAT, 2002},
		{ErrorCode_UPSTREAM_TRANSCRIPTION_FAILED, 3000},
		{ErrorCode_UPSTREAM_GENERATION_FAILED, 3001},
		{ErrorCode_PARSE_FAILED, 4000},
		{ErrorCode_PERSISTENCE_FAILED, 5000},
		{ErrorCode_DB_CONNECTION_FAILED, 5001},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.code, tc.code.String())
	}
}

func TestConstructorsStampTimestamp(t *testing.T) {
	cause := stdErrors.New("boom")

	for _, err := range []AppError{
		ErrNoFileProvided(),
		ErrNoFileSelected(),
		ErrUnsupportedFormat(),
		ErrTranscriptionFailed(cause),
		ErrSummaryGenerationFailed(cause),
		ErrUnexpectedResponseFormat(),
		ErrPersistenceFailed(cause),
		ErrInternal(cause),
		ErrNotFound("Meeting"),
		ErrInvalidArgument("bad id"),
		ErrDBConnectionFailed(cause),
	} {
		assert.False(t, err.Timestamp.IsZero(), err.Code.String())
	}
}
