package salary

import (
	salaryerrors "go-ats/internal/salary/errors"

	"github.com/shopspring/decimal"
)

// TaxSlab taxes income in (Lower, Upper] at Rate. Upper nil means no ceiling.
type TaxSlab struct {
	Lower int64
	Upper *int64
	Rate  decimal.Decimal
}

type TaxSlabLine struct {
	Lower   int64   `json:"lower"`
	Upper   *int64  `json:"upper,omitempty"`
	RatePct float64 `json:"rate_pct"`
	Taxable int64   `json:"taxable"`
	Tax     int64   `json:"tax"`
}

type TaxEstimate struct {
	AnnualIncome     int64         `json:"annual_income"`
	Slabs            []TaxSlabLine `json:"slabs"`
	TotalTax         int64         `json:"total_tax"`
	EffectiveRatePct float64       `json:"effective_rate_pct"`
}

func ceiling(v int64) *int64 { return &v }

// DefaultTaxSlabs: 0% to 2.5L, 5% to 5L, 20% to 10L, 30% above.
var DefaultTaxSlabs = []TaxSlab{
	{Lower: 0, Upper: ceiling(250000), Rate: decimal.Zero},
	{Lower: 250000, Upper: ceiling(500000), Rate: decimal.NewFromFloat(0.05)},
	{Lower: 500000, Upper: ceiling(1000000), Rate: decimal.NewFromFloat(0.20)},
	{Lower: 1000000, Upper: nil, Rate: decimal.NewFromFloat(0.30)},
}

// EstimateIncomeTax applies DefaultTaxSlabs as marginal rates. Display only; it
// never feeds into net take-home.
func EstimateIncomeTax(annualIncome int64) (TaxEstimate, error) {
	return EstimateIncomeTaxWithSlabs(annualIncome, DefaultTaxSlabs)
}

func EstimateIncomeTaxWithSlabs(annualIncome int64, slabs []TaxSlab) (TaxEstimate, error) {
	if annualIncome < 0 {
		return TaxEstimate{}, salaryerrors.ErrInvalidIncome
	}

	income := decimal.NewFromInt(annualIncome)
	total := decimal.Zero
	lines := make([]TaxSlabLine, 0, len(slabs))

	for _, slab := range slabs {
		lower := decimal.NewFromInt(slab.Lower)
		upper := income
		if slab.Upper != nil {
			upper = decimal.Min(income, decimal.NewFromInt(*slab.Upper))
		}

		taxable := decimal.Max(upper.Sub(lower), decimal.Zero)
		tax := taxable.Mul(slab.Rate)
		total = total.Add(tax)

		lines = append(lines, TaxSlabLine{
			Lower:   slab.Lower,
			Upper:   slab.Upper,
			RatePct: slab.Rate.Mul(decimal.NewFromInt(100)).InexactFloat64(),
			Taxable: taxable.IntPart(),
			Tax:     tax.Round(0).IntPart(),
		})
	}

	est := TaxEstimate{
		AnnualIncome: annualIncome,
		Slabs:        lines,
		TotalTax:     total.Round(0).IntPart(),
	}
	if annualIncome > 0 {
		est.EffectiveRatePct = total.Div(income).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return est, nil
}
