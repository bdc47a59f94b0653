package offerletter

import "go-ats/internal/salary"

type CreateOfferLetterRequest struct {
	CandidateID string  `json:"candidate_id" binding:"required,uuid"`
	Designation string  `json:"designation" binding:"required,max=120"`
	Department  string  `json:"department" binding:"max=120"`
	JoiningDate string  `json:"joining_date" binding:"required"`
	AnnualCTC   float64 `json:"annual_ctc"`
}

// RegenerateOfferLetterRequest replaces the CTC of a draft. Empty text fields
// keep their current value.
type RegenerateOfferLetterRequest struct {
	AnnualCTC   float64 `json:"annual_ctc"`
	Designation string  `json:"designation" binding:"max=120"`
	Department  string  `json:"department" binding:"max=120"`
	JoiningDate string  `json:"joining_date"`
}

type DeclineOfferLetterRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ListFilter struct {
	CandidateID string
	Status      string
}

type OfferLetterResponse struct {
	ID                 string  `json:"id"`
	CompanyID          string  `json:"company_id"`
	OfferNumber        string  `json:"offer_number"`
	CandidateID        string  `json:"candidate_id"`
	Designation        string  `json:"designation"`
	Department         string  `json:"department,omitempty"`
	JoiningDate        string  `json:"joining_date"`
	AnnualCTC          int64   `json:"annual_ctc"`
	NetTakeHomeMonthly int64   `json:"net_take_home_monthly"`
	Status             string  `json:"status"`
	DeclineReason      string  `json:"decline_reason,omitempty"`
	CreatedBy          string  `json:"created_by"`
	SentBy             *string `json:"sent_by,omitempty"`
	SentAt             *string `json:"sent_at,omitempty"`
	RespondedAt        *string `json:"responded_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

type OfferBreakdownResponse struct {
	OfferLetterID string `json:"offer_letter_id"`
	OfferNumber   string `json:"offer_number"`
	salary.BreakdownResponse
}

// Letterhead is the company block printed at the top of an offer letter and
// the signature block at the bottom.
type Letterhead struct {
	Name           string
	Address        string
	PostalLine     string
	SignatoryName  string
	SignatoryTitle string
}

// OfferDocument is what the PDF renderer and the mail consumer need.
type OfferDocument struct {
	FileName       string
	Content        []byte
	CandidateName  string
	CandidateEmail string
	CompanyName    string
	Offer          OfferLetterResponse
}
