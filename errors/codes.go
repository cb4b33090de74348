package errors

// ErrorCode identifies the failure class of an AppError
type ErrorCode int32

// General errors (1000-1999)
const (
	ErrorCode_INTERNAL ErrorCode = 1000 + iota
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_ARGUMENT
)

// Validation errors (2000-2999)
const (
	ErrorCode_VALIDATION_NO_FILE ErrorCode = 2000 + iota
	ErrorCode_VALIDATION_NO_FILENAME
	ErrorCode_VALIDATION_UNSUPPORTED_FORMAT
)

// Upstream provider errors (3000-3999)
const (
	ErrorCode_UPSTREAM_TRANSCRIPTION_FAILED ErrorCode = 3000 + iota
	ErrorCode_UPSTREAM_GENERATION_FAILED
)

// Parse errors (4000-4999)
const (
	ErrorCode_PARSE_FAILED ErrorCode = 4000 + iota
)

// Persistence errors (5000-5999)
const (
	ErrorCode_PERSISTENCE_FAILED ErrorCode = 5000 + iota
	ErrorCode_DB_CONNECTION_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                      "INTERNAL",
	ErrorCode_NOT_FOUND:                     "NOT_FOUND",
	ErrorCode_INVALID_ARGUMENT:              "INVALID_ARGUMENT",
	ErrorCode_VALIDATION_NO_FILE:            "VALIDATION_NO_FILE",
	ErrorCode_VALIDATION_NO_FILENAME:        "VALIDATION_NO_FILENAME",
	ErrorCode_VALIDATION_UNSUPPORTED_FORMAT: "VALIDATION_UNSUPPORTED_FORMAT",
	ErrorCode_UPSTREAM_TRANSCRIPTION_FAILED: "UPSTREAM_TRANSCRIPTION_FAILED",
	ErrorCode_UPSTREAM_GENERATION_FAILED:    "UPSTREAM_GENERATION_FAILED",
	ErrorCode_PARSE_FAILED:                  "PARSE_FAILED",
	ErrorCode_PERSISTENCE_FAILED:            "PERSISTENCE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:          "DB_CONNECTION_FAILED",
}

// String returns the symbolic name for the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
