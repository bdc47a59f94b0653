package feedback

type SubmitFeedbackRequest struct {
	InterviewID    string `json:"interview_id" binding:"required,uuid"`
	Rating         int    `json:"rating" binding:"required,gte=1,lte=5"`
	Recommendation string `json:"recommendation" binding:"required,oneof=STRONG_HIRE HIRE NO_HIRE STRONG_NO_HIRE"`
	Strengths      string `json:"strengths" binding:"max=2000"`
	Weaknesses     string `json:"weaknesses" binding:"max=2000"`
	Comments       string `json:"comments" binding:"max=4000"`
}

type UpdateFeedbackRequest struct {
	Rating         int    `json:"rating" binding:"required,gte=1,lte=5"`
	Recommendation string `json:"recommendation" binding:"required,oneof=STRONG_HIRE HIRE NO_HIRE STRONG_NO_HIRE"`
	Strengths      string `json:"strengths" binding:"max=2000"`
	Weaknesses     string `json:"weaknesses" binding:"max=2000"`
	Comments       string `json:"comments" binding:"max=4000"`
}

type FeedbackResponse struct {
	ID             string `json:"id"`
	InterviewID    string `json:"interview_id"`
	CandidateID    string `json:"candidate_id"`
	ReviewerID     string `json:"reviewer_id"`
	Rating         int    `json:"rating"`
	Recommendation string `json:"recommendation"`
	Strengths      string `json:"strengths,omitempty"`
	Weaknesses     string `json:"weaknesses,omitempty"`
	Comments       string `json:"comments,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type RecommendationCount struct {
	Recommendation string `json:"recommendation"`
	Count          int    `json:"count"`
}

type SummaryResponse struct {
	CandidateID     string                `json:"candidate_id"`
	TotalFeedback   int                   `json:"total_feedback"`
	AverageRating   float64               `json:"average_rating"`
	Recommendations []RecommendationCount `json:"recommendations"`
}
