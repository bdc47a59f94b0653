package interview

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusNoShow    = "NO_SHOW"

	ModeOnline = "ONLINE"
	ModeOnsite = "ONSITE"
	ModePhone  = "PHONE"
)

type Interview struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index:idx_interviews_company_status"`
	CandidateID   uuid.UUID `gorm:"type:uuid;not null;index"`
	InterviewerID uuid.UUID `gorm:"type:uuid;not null;index:idx_interviews_interviewer_slot"`

	Round           int       `gorm:"type:int;not null;default:1"`
	Mode            string    `gorm:"type:varchar(10);not null;default:'ONLINE'"`
	ScheduledAt     time.Time `gorm:"not null;index:idx_interviews_interviewer_slot"`
	DurationMinutes int       `gorm:"type:int;not null;default:60"`
	MeetingLink     string    `gorm:"type:text"`
	Location        string    `gorm:"type:text"`
	Notes           string    `gorm:"type:text"`

	Status       string    `gorm:"type:varchar(20);not null;default:'SCHEDULED';index:idx_interviews_company_status"`
	CancelReason *string   `gorm:"type:text"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (i Interview) EndsAt() time.Time {
	return i.ScheduledAt.Add(time.Duration(i.DurationMinutes) * time.Minute)
}

// Overlaps reports whether two half-open slots [start, start+duration) intersect.
func Overlaps(aStart time.Time, aMinutes int, bStart time.Time, bMinutes int) bool {
	aEnd := aStart.Add(time.Duration(aMinutes) * time.Minute)
	bEnd := bStart.Add(time.Duration(bMinutes) * time.Minute)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
