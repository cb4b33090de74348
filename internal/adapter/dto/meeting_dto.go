package dto

import (
	"time"
)

// SummarizeResponse is the success payload for POST /summarize
type SummarizeResponse struct {
	Transcript  string `json:"transcript"`
	Summary     string `json:"summary"`
	ActionItems string `json:"action_items"`
	MeetingID   uint   `json:"meeting_id"`
}

// ErrorResponse is the error envelope for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// MeetingResponse represents a stored meeting record
type MeetingResponse struct {
	ID          uint      `json:"id"`
	Filename    string    `json:"filename"`
	Transcript  string    `json:"transcript"`
	Summary     string    `json:"summary"`
	ActionItems string    `json:"action_items"`
	CreatedAt   time.Time `json:"created_at"`
}
