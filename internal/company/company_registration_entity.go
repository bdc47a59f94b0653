package company

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

type RegistrationType string

const (
	RegistrationTypeGSTIN RegistrationType = "GSTIN"
	RegistrationTypePAN   RegistrationType = "PAN"
	RegistrationTypeCIN   RegistrationType = "CIN"
	RegistrationTypeTAN   RegistrationType = "TAN"
)

var registrationFormats = map[RegistrationType]*regexp.Regexp{
	RegistrationTypeGSTIN: regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`),
	RegistrationTypePAN:   regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`),
	RegistrationTypeCIN:   regexp.MustCompile(`^[LU][0-9]{5}[A-Z]{2}[0-9]{4}[A-Z]{3}[0-9]{6}$`),
	RegistrationTypeTAN:   regexp.MustCompile(`^[A-Z]{4}[0-9]{5}[A-Z]$`),
}

func (t RegistrationType) Valid() bool {
	_, ok := registrationFormats[t]
	return ok
}

// ValidNumber expects an upper-cased, trimmed number.
func (t RegistrationType) ValidNumber(number string) bool {
	re, ok := registrationFormats[t]
	return ok && re.MatchString(number)
}

type CompanyRegistration struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_company_registration_type,priority:1"`
	Type      RegistrationType `gorm:"type:varchar(10);not null;uniqueIndex:uq_company_registration_type,priority:2"`
	Number    string           `gorm:"type:varchar(30);not null"`
	IssuedAt  *time.Time       `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
