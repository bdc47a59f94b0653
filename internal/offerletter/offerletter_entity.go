package offerletter

import (
	"time"

	"go-ats/internal/salary"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusSent      = "SENT"
	StatusAccepted  = "ACCEPTED"
	StatusDeclined  = "DECLINED"
	StatusWithdrawn = "WITHDRAWN"
)

var statusTransitions = map[string][]string{
	StatusDraft: {StatusSent, StatusWithdrawn},
	StatusSent:  {StatusAccepted, StatusDeclined, StatusWithdrawn},
}

func CanTransition(from, to string) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type OfferLetter struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_offer_company_status;uniqueIndex:uq_offer_number,priority:1"`
	OfferNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_offer_number,priority:2"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;index"`
	Designation string    `gorm:"type:varchar(120);not null"`
	Department  string    `gorm:"type:varchar(120)"`
	JoiningDate time.Time `gorm:"type:date;not null"`
	AnnualCTC   int64     `gorm:"type:bigint;not null"`

	Components StoredBreakdown `gorm:"embedded"`

	Status        string     `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_offer_company_status"`
	DeclineReason string     `gorm:"type:text"`
	CreatedBy     uuid.UUID  `gorm:"type:uuid;not null"`
	SentBy        *uuid.UUID `gorm:"type:uuid"`
	SentAt        *time.Time
	RespondedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// StoredBreakdown is the breakdown frozen at creation time. Each row becomes a
// pair of <name>_monthly / <name>_annual columns.
type StoredBreakdown struct {
	Basic           salary.Amount `gorm:"embedded;embeddedPrefix:basic_"`
	Conveyance      salary.Amount `gorm:"embedded;embeddedPrefix:conveyance_"`
	HRA             salary.Amount `gorm:"embedded;embeddedPrefix:hra_"`
	Medical         salary.Amount `gorm:"embedded;embeddedPrefix:medical_"`
	Flexi           salary.Amount `gorm:"embedded;embeddedPrefix:flexi_"`
	TotalA          salary.Amount `gorm:"embedded;embeddedPrefix:total_a_"`
	EmployerPF      salary.Amount `gorm:"embedded;embeddedPrefix:employer_pf_"`
	TotalB          salary.Amount `gorm:"embedded;embeddedPrefix:total_b_"`
	TotalAB         salary.Amount `gorm:"embedded;embeddedPrefix:total_ab_"`
	ProfessionalTax salary.Amount `gorm:"embedded;embeddedPrefix:professional_tax_"`
	EmployeePF      salary.Amount `gorm:"embedded;embeddedPrefix:employee_pf_"`
	Insurance       salary.Amount `gorm:"embedded;embeddedPrefix:insurance_"`
	TotalDeductions salary.Amount `gorm:"embedded;embeddedPrefix:total_deductions_"`

	NetTakeHomeMonthly int64    `gorm:"type:bigint;not null;default:0"`
	Warnings           []string `gorm:"column:breakdown_warnings;type:jsonb;serializer:json"`
}

func storeBreakdown(b salary.Breakdown) StoredBreakdown {
	return StoredBreakdown{
		Basic:              b.Basic,
		Conveyance:         b.Conveyance,
		HRA:                b.HRA,
		Medical:            b.Medical,
		Flexi:              b.Flexi,
		TotalA:             b.TotalA,
		EmployerPF:         b.EmployerPF,
		TotalB:             b.TotalB,
		TotalAB:            b.TotalAB,
		ProfessionalTax:    b.ProfessionalTax,
		EmployeePF:         b.EmployeePF,
		Insurance:          b.Insurance,
		TotalDeductions:    b.TotalDeductions,
		NetTakeHomeMonthly: b.NetTakeHomeMonthly,
		Warnings:           b.Warnings,
	}
}

// Breakdown rebuilds the breakdown from the stored columns. It never calls the
// calculator, so a later change to the formula does not alter a sent offer.
func (o *OfferLetter) Breakdown() salary.Breakdown {
	c := o.Components
	var warnings []string
	if len(c.Warnings) > 0 {
		warnings = append(warnings, c.Warnings...)
	}
	return salary.Breakdown{
		AnnualCTC:          o.AnnualCTC,
		Basic:              c.Basic,
		Conveyance:         c.Conveyance,
		HRA:                c.HRA,
		Medical:            c.Medical,
		Flexi:              c.Flexi,
		TotalA:             c.TotalA,
		EmployerPF:         c.EmployerPF,
		ESI:                nil,
		TotalB:             c.TotalB,
		TotalAB:            c.TotalAB,
		ProfessionalTax:    c.ProfessionalTax,
		EmployeePF:         c.EmployeePF,
		Insurance:          c.Insurance,
		TotalDeductions:    c.TotalDeductions,
		NetTakeHomeMonthly: c.NetTakeHomeMonthly,
		Warnings:           warnings,
	}
}
