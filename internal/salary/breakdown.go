// Package salary derives the Indian payroll components of an offer from its annual CTC.
package salary

import (
	"math"

	salaryerrors "go-ats/internal/salary/errors"
)

const (
	BasicRatio = 0.60
	HRARatio   = 0.40

	ConveyanceAnnual  int64 = 19200
	ConveyanceMonthly int64 = 1600
	MedicalAnnual     int64 = 15000
	MedicalMonthly    int64 = 1250

	PFRate           = 0.12
	PFWageCeiling    = 15000.0
	PFMonthlyCeiling = 1800.0

	ProfessionalTaxMonthly int64 = 200
	ProfessionalTaxAnnual  int64 = 2400
	InsuranceMonthly       int64 = 500
	InsuranceAnnual        int64 = 6000

	// MaxAnnualCTC keeps every intermediate value exact in float64.
	MaxAnnualCTC = 1e12

	WarningNegativeFlexi = "negative_flexi"
)

// Amount is one row of the breakdown table, in whole rupees.
type Amount struct {
	Monthly int64 `json:"monthly"`
	Annual  int64 `json:"annual"`
}

func (a Amount) Add(b Amount) Amount {
	return Amount{Monthly: a.Monthly + b.Monthly, Annual: a.Annual + b.Annual}
}

// Breakdown is the full CTC split. ESI is nil because it is not applicable, which
// is different from zero.
type Breakdown struct {
	AnnualCTC int64 `json:"annual_ctc"`

	Basic      Amount `json:"basic"`
	Conveyance Amount `json:"conveyance"`
	HRA        Amount `json:"hra"`
	Medical    Amount `json:"medical"`
	Flexi      Amount `json:"flexi"`
	TotalA     Amount `json:"total_a"`

	EmployerPF Amount  `json:"employer_pf"`
	ESI        *Amount `json:"esi"`
	TotalB     Amount  `json:"total_b"`
	TotalAB    Amount  `json:"total_ab"`

	ProfessionalTax Amount `json:"professional_tax"`
	EmployeePF      Amount `json:"employee_pf"`
	Insurance       Amount `json:"insurance"`
	TotalDeductions Amount `json:"total_deductions"`

	NetTakeHomeMonthly int64 `json:"net_take_home_monthly"`

	Warnings []string `json:"warnings,omitempty"`
}

// Calculate splits annualCTC into earnings (A), employer contributions (B) and
// deductions. TotalAB.Annual always equals annualCTC: flexi and employer PF are
// the balancing residuals.
func Calculate(annualCTC float64) (Breakdown, error) {
	if err := ValidateCTC(annualCTC); err != nil {
		return Breakdown{}, err
	}
	ctc := int64(annualCTC)

	basicAnnual := round(BasicRatio * annualCTC)
	hraAnnual := round(HRARatio * float64(basicAnnual))

	basicMonthlyRaw := float64(basicAnnual) / 12
	pfMonthlyRaw := math.Min(PFRate*math.Min(PFWageCeiling, basicMonthlyRaw), PFMonthlyCeiling)
	pf := Amount{Monthly: round(pfMonthlyRaw), Annual: round(pfMonthlyRaw * 12)}

	aAnnual := ctc - pf.Annual
	aMonthly := round(float64(aAnnual) / 12)

	basic := Amount{Monthly: round(float64(basicAnnual) / 12), Annual: basicAnnual}
	hra := Amount{Monthly: round(float64(hraAnnual) / 12), Annual: hraAnnual}
	conveyance := Amount{Monthly: ConveyanceMonthly, Annual: ConveyanceAnnual}
	medical := Amount{Monthly: MedicalMonthly, Annual: MedicalAnnual}

	fixed := basic.Add(hra).Add(conveyance).Add(medical)
	// monthly flexi is its own residual, so Flexi.Monthly*12 != Flexi.Annual in general
	flexi := Amount{Monthly: aMonthly - fixed.Monthly, Annual: aAnnual - fixed.Annual}
	totalA := Amount{Monthly: aMonthly, Annual: aAnnual}

	totalB := pf
	totalAB := totalA.Add(totalB)

	professionalTax := Amount{Monthly: ProfessionalTaxMonthly, Annual: ProfessionalTaxAnnual}
	insurance := Amount{Monthly: InsuranceMonthly, Annual: InsuranceAnnual}
	employeePF := pf
	deductions := employeePF.Add(professionalTax).Add(insurance)

	b := Breakdown{
		AnnualCTC:          ctc,
		Basic:              basic,
		Conveyance:         conveyance,
		HRA:                hra,
		Medical:            medical,
		Flexi:              flexi,
		TotalA:             totalA,
		EmployerPF:         pf,
		TotalB:             totalB,
		TotalAB:            totalAB,
		ProfessionalTax:    professionalTax,
		EmployeePF:         employeePF,
		Insurance:          insurance,
		TotalDeductions:    deductions,
		NetTakeHomeMonthly: totalA.Monthly - deductions.Monthly,
	}
	if flexi.Annual < 0 || flexi.Monthly < 0 {
		b.Warnings = append(b.Warnings, WarningNegativeFlexi)
	}

	if b.TotalAB.Annual != ctc {
		return Breakdown{}, salaryerrors.ErrBreakdownMismatch
	}
	return b, nil
}

// ValidateCTC rejects NaN, infinities, non-positive and fractional amounts.
func ValidateCTC(annualCTC float64) error {
	if math.IsNaN(annualCTC) || math.IsInf(annualCTC, 0) {
		return salaryerrors.ErrInvalidCTC
	}
	if annualCTC <= 0 || annualCTC != math.Trunc(annualCTC) {
		return salaryerrors.ErrInvalidCTC
	}
	if annualCTC > MaxAnnualCTC {
		return salaryerrors.ErrInvalidCTC
	}
	return nil
}

// round is half-up for the non-negative values it is called with.
func round(v float64) int64 {
	return int64(math.Round(v))
}
