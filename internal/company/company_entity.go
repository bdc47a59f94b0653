package company

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var pinCodeFormat = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// Company is one tenant. The address and signatory fields form the
// letterhead printed on offer letters.
type Company struct {
	ID                  uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string                `gorm:"type:varchar(150);not null"`
	Email               string                `gorm:"type:varchar(255);index"`
	Address             string                `gorm:"type:text"`
	City                string                `gorm:"type:varchar(100)"`
	State               string                `gorm:"type:varchar(100)"`
	PinCode             string                `gorm:"type:varchar(6)"`
	OfferSignatoryName  string                `gorm:"type:varchar(150)"`
	OfferSignatoryTitle string                `gorm:"type:varchar(120)"`
	IsActive            bool                  `gorm:"not null;default:true"`
	CreatedAt           time.Time             `gorm:"not null;default:now()"`
	UpdatedAt           time.Time             `gorm:"not null;default:now()"`
	DeletedAt           gorm.DeletedAt        `gorm:"index"`
	Registrations       []CompanyRegistration `gorm:"foreignKey:CompanyID"`
}

func (Company) TableName() string {
	return "companies"
}

// ValidPinCode accepts six-digit Indian postal codes; the first digit is
// never 0.
func ValidPinCode(pin string) bool {
	return pinCodeFormat.MatchString(pin)
}

// PostalLine joins city, state and PIN as printed under the street address,
// e.g. "Bengaluru, Karnataka 560001".
func (c *Company) PostalLine() string {
	parts := make([]string, 0, 2)
	if c.City != "" {
		parts = append(parts, c.City)
	}
	if c.State != "" {
		parts = append(parts, c.State)
	}
	line := strings.Join(parts, ", ")
	if c.PinCode != "" {
		line = strings.TrimSpace(line + " " + c.PinCode)
	}
	return line
}
