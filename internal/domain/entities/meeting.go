package entities

import (
	"time"
)

// Meeting is the persisted outcome of one successful upload-processing
// run. Records are append-only: created once after transcription and
// parsing both succeed, never updated or deleted.
type Meeting struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Filename    string    `json:"filename" gorm:"type:varchar(255);not null"`
	Transcript  string    `json:"transcript" gorm:"type:text"`
	Summary     string    `json:"summary" gorm:"type:text"`
	ActionItems string    `json:"action_items" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting record ready for persistence. The store
// assigns the surrogate ID on create.
func NewMeeting(filename, transcript, summary, actionItems string) *Meeting {
	return &Meeting{
		Filename:    filename,
		Transcript:  transcript,
		Summary:     summary,
		ActionItems: actionItems,
		CreatedAt:   time.Now().UTC(),
	}
}
