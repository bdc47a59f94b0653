package offerlettererrors

import (
	"net/http"

	"go-ats/internal/shared/apperror"
)

var (
	ErrOfferNotFound = apperror.New(
		apperror.CodeNotFound,
		"Offer letter not found",
		http.StatusNotFound,
	)
	ErrInvalidOfferID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid offer letter ID",
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
	ErrInvalidCandidateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid candidate ID",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Joining date must use YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrJoiningDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"Joining date cannot be in the past",
		http.StatusBadRequest,
	)
	ErrDeclineReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Decline reason is required",
		http.StatusBadRequest,
	)
	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found",
		http.StatusNotFound,
	)
	ErrCandidateNotReady = apperror.New(
		apperror.CodeInvalidState,
		"Candidate must be in the interview or offered stage",
		http.StatusUnprocessableEntity,
	)
	ErrActiveOfferExists = apperror.New(
		apperror.CodeConflict,
		"Candidate already has a draft or sent offer",
		http.StatusConflict,
	)
	ErrOfferNumberExists = apperror.New(
		apperror.CodeConflict,
		"Offer number already exists in this company",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Offer letter cannot move to the requested status",
		http.StatusUnprocessableEntity,
	)
	ErrOnlyDraftEditable = apperror.New(
		apperror.CodeInvalidState,
		"Only draft offer letters can be regenerated",
		http.StatusUnprocessableEntity,
	)
	ErrOnlyDraftDeletable = apperror.New(
		apperror.CodeInvalidState,
		"Only draft offer letters can be deleted",
		http.StatusUnprocessableEntity,
	)
	ErrPDFRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render offer letter PDF",
		http.StatusInternalServerError,
	)
)
