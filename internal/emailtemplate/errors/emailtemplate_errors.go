package emailtemplateerrors

import (
	"net/http"

	"go-ats/internal/shared/apperror"
)

var (
	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Email template not found",
		http.StatusNotFound,
	)
	ErrNoActiveTemplate = apperror.New(
		apperror.CodeNotFound,
		"No active email template for this type",
		http.StatusNotFound,
	)
	ErrInvalidTemplateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email template ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)
	ErrInvalidTemplateType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown email template type",
		http.StatusBadRequest,
	)
	ErrEmptyBody = apperror.New(
		apperror.CodeInvalidInput,
		"Template body is empty after removing unsafe HTML",
		http.StatusBadRequest,
	)
	ErrTemplateNameExists = apperror.New(
		apperror.CodeConflict,
		"Email template with the same name already exists",
		http.StatusConflict,
	)
)
