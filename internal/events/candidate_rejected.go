package events

import "time"

const (
	CandidateRejectedTopic = "ats.candidate.rejected.v1"
	CandidateRejectedType  = "candidate.rejected"
)

type CandidateRejectedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	CandidateID string    `json:"candidate_id"`
	CompanyID   string    `json:"company_id"`
	Reason      string    `json:"reason,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
