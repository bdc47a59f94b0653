package emailtemplate

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeOfferLetter     = "OFFER_LETTER"
	TypeInterviewInvite = "INTERVIEW_INVITE"
	TypeRejection       = "REJECTION"
	TypeGeneral         = "GENERAL"
)

var Types = []string{TypeOfferLetter, TypeInterviewInvite, TypeRejection, TypeGeneral}

func IsValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

type EmailTemplate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_email_template_type"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Type      string    `gorm:"type:varchar(30);not null;index:idx_email_template_type"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	BodyHTML  string    `gorm:"column:body_html;type:text;not null"`
	IsActive  bool      `gorm:"not null;default:false"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
