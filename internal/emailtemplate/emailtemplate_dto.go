package emailtemplate

type CreateEmailTemplateRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Type     string `json:"type" binding:"required,oneof=OFFER_LETTER INTERVIEW_INVITE REJECTION GENERAL"`
	Subject  string `json:"subject" binding:"required,max=255"`
	BodyHTML string `json:"body_html" binding:"required"`
	IsActive bool   `json:"is_active"`
}

type UpdateEmailTemplateRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Subject  string `json:"subject" binding:"required,max=255"`
	BodyHTML string `json:"body_html" binding:"required"`
	IsActive bool   `json:"is_active"`
}

type PreviewRequest struct {
	Variables map[string]string `json:"variables"`
}

type ListFilter struct {
	Type string
}

type EmailTemplateResponse struct {
	ID        string   `json:"id"`
	CompanyID string   `json:"company_id,omitempty"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Subject   string   `json:"subject"`
	BodyHTML  string   `json:"body_html"`
	Variables []string `json:"variables"`
	IsActive  bool     `json:"is_active"`
	BuiltIn   bool     `json:"built_in,omitempty"`
	CreatedBy string   `json:"created_by,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}
