package events

import "time"

const (
	OfferLetterSentTopic = "ats.offer_letter.sent.v1"
	OfferLetterSentType  = "offer_letter.sent"
)

type OfferLetterSentEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	OfferLetterID string    `json:"offer_letter_id"`
	CandidateID   string    `json:"candidate_id"`
	CompanyID     string    `json:"company_id"`
	SentBy        string    `json:"sent_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
