package companyerrors

import (
	"net/http"

	"go-ats/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidRegistrationType = apperror.New(
		apperror.CodeInvalidInput,
		"Registration type must be one of GSTIN, PAN, CIN, TAN",
		http.StatusBadRequest,
	)

	ErrInvalidRegistrationNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Registration number does not match the expected format",
		http.StatusBadRequest,
	)

	ErrInvalidPinCode = apperror.New(
		apperror.CodeInvalidInput,
		"PIN code must be 6 digits and cannot start with 0",
		http.StatusBadRequest,
	)

	ErrRegistrationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company registration not found",
		http.StatusNotFound,
	)
)
