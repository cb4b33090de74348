package repositories

import (
	"context"

	"github.com/meeting-summarizer/meeting-summarizer/internal/domain/entities"
)

// MeetingRepository defines append-only persistence for meeting records
type MeetingRepository interface {
	// Create persists the record and assigns its surrogate ID.
	Create(ctx context.Context, meeting *entities.Meeting) error
	// FindByID returns the record, or nil when no record has that ID.
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)
}
