package candidate

import (
	"regexp"
	"sync"
	"time"

	candidateerrors "go-ats/internal/candidate/errors"
	"go-ats/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

// EducationEntry, EmploymentEntry and IdentityDocumentSet are persisted as jsonb
// columns and validated on every save.
type EducationEntry struct {
	Institution  string `json:"institution" validate:"required,max=200"`
	Degree       string `json:"degree" validate:"required,max=120"`
	FieldOfStudy string `json:"field_of_study,omitempty" validate:"max=120"`
	StartYear    int    `json:"start_year" validate:"required,gte=1950,lte=2100"`
	EndYear      int    `json:"end_year,omitempty" validate:"omitempty,gtefield=StartYear,lte=2100"`
	Grade        string `json:"grade,omitempty" validate:"max=20"`
}

type EmploymentEntry struct {
	Employer    string `json:"employer" validate:"required,max=200"`
	Designation string `json:"designation" validate:"required,max=120"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsCurrent   bool   `json:"is_current"`
	LastCTC     int64  `json:"last_ctc,omitempty" validate:"gte=0"`
}

type IdentityDocumentSet struct {
	PAN      string `json:"pan,omitempty" validate:"omitempty,pan"`
	Aadhaar  string `json:"aadhaar,omitempty" validate:"omitempty,aadhaar"`
	Passport string `json:"passport,omitempty" validate:"omitempty,passport"`
	UAN      string `json:"uan,omitempty" validate:"omitempty,numeric,len=12"`
}

func (d IdentityDocumentSet) IsEmpty() bool {
	return d == IdentityDocumentSet{}
}

var (
	panPattern      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarPattern  = regexp.MustCompile(`^[2-9][0-9]{11}$`)
	passportPattern = regexp.MustCompile(`^[A-Z][0-9]{7}$`)
)

// RegisterValidations adds the Indian identity-number tags. It is passed to
// apperror.Init so request binding understands them too.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return panPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("aadhaar", func(fl validator.FieldLevel) bool {
		return aadhaarPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("passport", func(fl validator.FieldLevel) bool {
		return passportPattern.MatchString(fl.Field().String())
	})
}

var (
	docValidator     *validator.Validate
	docValidatorOnce sync.Once
)

func documentValidator() *validator.Validate {
	docValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(apperror.JSONTagName)
		RegisterValidations(v)
		docValidator = v
	})
	return docValidator
}

func validateStruct(s any) error {
	if err := documentValidator().Struct(s); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}

func validateEducation(entries []EducationEntry) error {
	for i := range entries {
		if err := validateStruct(entries[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateEmployment(entries []EmploymentEntry) error {
	current := 0
	for i := range entries {
		e := entries[i]
		if err := validateStruct(e); err != nil {
			return err
		}
		if e.IsCurrent {
			current++
		}
		if e.EndDate != "" {
			start, _ := time.Parse(time.DateOnly, e.StartDate)
			end, _ := time.Parse(time.DateOnly, e.EndDate)
			if end.Before(start) {
				return candidateerrors.ErrEmploymentDates
			}
		}
	}
	if current > 1 {
		return candidateerrors.ErrMultipleCurrentEmployers
	}
	return nil
}

func validateIdentity(d IdentityDocumentSet) error {
	return validateStruct(d)
}

// ValidateDocuments checks every json document on the record.
func ValidateDocuments(c *Candidate) error {
	if err := validateEducation(c.Education); err != nil {
		return err
	}
	if err := validateEmployment(c.Employment); err != nil {
		return err
	}
	return validateIdentity(c.IdentityDocuments)
}
