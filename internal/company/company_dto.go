package company

import "time"

type CompanyResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Address             string `json:"address,omitempty"`
	City                string `json:"city,omitempty"`
	State               string `json:"state,omitempty"`
	PinCode             string `json:"pin_code,omitempty"`
	OfferSignatoryName  string `json:"offer_signatory_name,omitempty"`
	OfferSignatoryTitle string `json:"offer_signatory_title,omitempty"`
	IsActive            bool   `json:"is_active"`
}

// UpdateCompanyRequest is a partial update; nil pointers keep the stored
// value and an empty string clears it.
type UpdateCompanyRequest struct {
	Name                string  `json:"name" binding:"omitempty,max=150"`
	Email               string  `json:"email" binding:"omitempty,email"`
	Address             *string `json:"address"`
	City                *string `json:"city" binding:"omitempty,max=100"`
	State               *string `json:"state" binding:"omitempty,max=100"`
	PinCode             *string `json:"pin_code"`
	OfferSignatoryName  *string `json:"offer_signatory_name" binding:"omitempty,max=150"`
	OfferSignatoryTitle *string `json:"offer_signatory_title" binding:"omitempty,max=120"`
	IsActive            *bool   `json:"is_active"`
}

type UpsertCompanyRegistrationRequest struct {
	Type     RegistrationType `json:"type" binding:"required"`
	Number   string           `json:"number" binding:"required"`
	IssuedAt *time.Time       `json:"issued_at,omitempty"`
}

type CompanyRegistrationResponse struct {
	ID        string           `json:"id"`
	Type      RegistrationType `json:"type"`
	Number    string           `json:"number"`
	IssuedAt  *time.Time       `json:"issued_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
