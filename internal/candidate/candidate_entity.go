package candidate

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Stage string

const (
	StageApplied   Stage = "APPLIED"
	StageScreening Stage = "SCREENING"
	StageInterview Stage = "INTERVIEW"
	StageOffered   Stage = "OFFERED"
	StageHired     Stage = "HIRED"
	StageRejected  Stage = "REJECTED"
	StageWithdrawn Stage = "WITHDRAWN"
)

type Candidate struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID           `gorm:"type:uuid;index;uniqueIndex:uq_candidate_number,priority:1"`
	CandidateNumber   string              `gorm:"type:varchar(20);uniqueIndex:uq_candidate_number,priority:2"`
	FullName          string              `gorm:"type:varchar(150);not null"`
	Email             string              `gorm:"type:varchar(255)"`
	Phone             string              `gorm:"type:varchar(20)"`
	PositionApplied   string              `gorm:"type:varchar(120)"`
	Source            string              `gorm:"type:varchar(50)"`
	Stage             Stage               `gorm:"type:varchar(20);index;not null;default:'APPLIED'"`
	RejectionReason   string              `gorm:"type:text"`
	CurrentCTC        int64               `gorm:"not null;default:0"`
	ExpectedCTC       int64               `gorm:"not null;default:0"`
	NoticePeriodDays  int                 `gorm:"not null;default:0"`
	ResumeURL         string              `gorm:"type:text"`
	Education         []EducationEntry    `gorm:"type:jsonb;serializer:json"`
	Employment        []EmploymentEntry   `gorm:"type:jsonb;serializer:json"`
	IdentityDocuments IdentityDocumentSet `gorm:"type:jsonb;serializer:json"`
	CurrentSection    int                 `gorm:"not null;default:0"`
	CompletedSections []string            `gorm:"type:jsonb;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// BeforeSave rejects malformed json documents before they reach the database.
func (c *Candidate) BeforeSave(*gorm.DB) error {
	return ValidateDocuments(c)
}

// Wizard rebuilds the form state machine from the persisted columns.
func (c *Candidate) Wizard() *Wizard {
	return RestoreWizard(c.CurrentSection, c.CompletedSections)
}

func (c *Candidate) applyWizard(w *Wizard) {
	c.CurrentSection = w.CurrentIndex()
	c.CompletedSections = w.Completed()
}
