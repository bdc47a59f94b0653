package candidate

type PersonalDetails struct {
	FullName         string `json:"full_name" binding:"required,max=150"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required,min=8,max=20"`
	PositionApplied  string `json:"position_applied" binding:"required,max=120"`
	Source           string `json:"source" binding:"omitempty,max=50"`
	CurrentCTC       int64  `json:"current_ctc" binding:"gte=0"`
	ExpectedCTC      int64  `json:"expected_ctc" binding:"gte=0"`
	NoticePeriodDays int    `json:"notice_period_days" binding:"gte=0,lte=365"`
	ResumeURL        string `json:"resume_url" binding:"omitempty,url"`
}

type CreateCandidateRequest struct {
	PersonalDetails
}

type UpdateCandidateRequest struct {
	PersonalDetails
}

// SaveSectionRequest carries the payload of one form section; only the field
// matching the section in the URL is read.
type SaveSectionRequest struct {
	Personal   *PersonalDetails     `json:"personal"`
	Education  []EducationEntry     `json:"education"`
	Employment []EmploymentEntry    `json:"employment"`
	Documents  *IdentityDocumentSet `json:"documents"`
}

type MoveStageRequest struct {
	Stage  string `json:"stage" binding:"required,oneof=APPLIED SCREENING INTERVIEW OFFERED HIRED REJECTED WITHDRAWN"`
	Reason string `json:"reason" binding:"max=500"`
}

type ListFilter struct {
	Q     string
	Stage string
}

type WizardResponse struct {
	CurrentSection    string   `json:"current_section"`
	CurrentIndex      int      `json:"current_index"`
	CompletedSections []string `json:"completed_sections"`
	Complete          bool     `json:"complete"`
}

type CandidateResponse struct {
	ID                string              `json:"id"`
	CompanyID         string              `json:"company_id"`
	CandidateNumber   string              `json:"candidate_number"`
	FullName          string              `json:"full_name"`
	Email             string              `json:"email"`
	Phone             string              `json:"phone"`
	PositionApplied   string              `json:"position_applied"`
	Source            string              `json:"source,omitempty"`
	Stage             string              `json:"stage"`
	RejectionReason   string              `json:"rejection_reason,omitempty"`
	CurrentCTC        int64               `json:"current_ctc"`
	ExpectedCTC       int64               `json:"expected_ctc"`
	NoticePeriodDays  int                 `json:"notice_period_days"`
	ResumeURL         string              `json:"resume_url,omitempty"`
	Education         []EducationEntry    `json:"education"`
	Employment        []EmploymentEntry   `json:"employment"`
	IdentityDocuments IdentityDocumentSet `json:"identity_documents"`
	Wizard            WizardResponse      `json:"wizard"`
	CreatedAt         string              `json:"created_at"`
}

// CandidateOption is the slim shape used by dropdowns (interview, offer forms).
type CandidateOption struct {
	ID              string `json:"id"`
	CandidateNumber string `json:"candidate_number"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Stage           string `json:"stage"`
}
