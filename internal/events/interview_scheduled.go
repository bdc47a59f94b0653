package events

import "time"

const (
	InterviewScheduledTopic = "ats.interview.scheduled.v1"
	InterviewScheduledType  = "interview.scheduled"
)

// InterviewScheduledEvent is emitted on first scheduling and on every reschedule.
type InterviewScheduledEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	InterviewID   string    `json:"interview_id"`
	CandidateID   string    `json:"candidate_id"`
	CompanyID     string    `json:"company_id"`
	InterviewerID string    `json:"interviewer_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Rescheduled   bool      `json:"rescheduled"`
	OccurredAt    time.Time `json:"occurred_at"`
}
