package salary

// BreakdownRequest leaves the range check to ValidateCTC; required only
// rejects an absent field, so 0 reaches the service as INVALID_INPUT.
type BreakdownRequest struct {
	AnnualCTC *float64 `json:"annual_ctc" form:"annual_ctc" binding:"required"`
}

type BreakdownResponse struct {
	Breakdown   Breakdown   `json:"breakdown"`
	TaxEstimate TaxEstimate `json:"tax_estimate"`
}
