package interview

type ScheduleInterviewRequest struct {
	CandidateID     string `json:"candidate_id" binding:"required,uuid"`
	InterviewerID   string `json:"interviewer_id" binding:"required,uuid"`
	Round           int    `json:"round" binding:"omitempty,gte=1,lte=20"`
	Mode            string `json:"mode" binding:"required,oneof=ONLINE ONSITE PHONE"`
	ScheduledAt     string `json:"scheduled_at" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gte=15,lte=480"`
	MeetingLink     string `json:"meeting_link" binding:"omitempty,url"`
	Location        string `json:"location" binding:"max=255"`
	Notes           string `json:"notes"`
}

type RescheduleInterviewRequest struct {
	InterviewerID   string `json:"interviewer_id" binding:"omitempty,uuid"`
	ScheduledAt     string `json:"scheduled_at" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,gte=15,lte=480"`
}

type CompleteInterviewRequest struct {
	Notes string `json:"notes"`
}

type CancelInterviewRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ListFilter struct {
	CandidateID   string
	InterviewerID string
	Status        string
}

type InterviewResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	CandidateID     string  `json:"candidate_id"`
	InterviewerID   string  `json:"interviewer_id"`
	Round           int     `json:"round"`
	Mode            string  `json:"mode"`
	ScheduledAt     string  `json:"scheduled_at"`
	EndsAt          string  `json:"ends_at"`
	DurationMinutes int     `json:"duration_minutes"`
	MeetingLink     string  `json:"meeting_link,omitempty"`
	Location        string  `json:"location,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	Status          string  `json:"status"`
	CancelReason    *string `json:"cancel_reason,omitempty"`
	CreatedBy       string  `json:"created_by"`
	CompletedAt     *string `json:"completed_at,omitempty"`
}
