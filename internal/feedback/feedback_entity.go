package feedback

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RecommendationStrongHire   = "STRONG_HIRE"
	RecommendationHire         = "HIRE"
	RecommendationNoHire       = "NO_HIRE"
	RecommendationStrongNoHire = "STRONG_NO_HIRE"
)

// Recommendations is the display order used by the summary.
var Recommendations = []string{
	RecommendationStrongHire,
	RecommendationHire,
	RecommendationNoHire,
	RecommendationStrongNoHire,
}

type Feedback struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	InterviewID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CandidateID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ReviewerID     uuid.UUID `gorm:"type:uuid;not null"`
	Rating         int       `gorm:"type:smallint;not null"`
	Recommendation string    `gorm:"type:varchar(20);not null"`
	Strengths      string    `gorm:"type:text"`
	Weaknesses     string    `gorm:"type:text"`
	Comments       string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Feedback) TableName() string {
	return "interview_feedback"
}

// InterviewRef is the slice of an interview row feedback rules depend on.
type InterviewRef struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	Status      string
}
