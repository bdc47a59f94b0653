package candidateerrors

import (
	"net/http"

	"go-ats/internal/shared/apperror"
)

var (
	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found",
		http.StatusNotFound,
	)
	ErrCandidateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Candidate with the same email already exists",
		http.StatusConflict,
	)
	ErrCandidateNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Candidate number already exists in this company",
		http.StatusConflict,
	)
	ErrInvalidCandidateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid candidate ID",
		http.StatusBadRequest,
	)
	ErrInvalidStage = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown candidate stage",
		http.StatusBadRequest,
	)
	ErrInvalidStageTransition = apperror.New(
		apperror.CodeInvalidState,
		"Candidate cannot move to the requested stage",
		http.StatusUnprocessableEntity,
	)
	ErrCandidateClosed = apperror.New(
		apperror.CodeInvalidState,
		"Candidate is already hired, rejected or withdrawn",
		http.StatusUnprocessableEntity,
	)
	ErrProfileIncomplete = apperror.New(
		apperror.CodeInvalidState,
		"Candidate profile must be completed before an offer",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownSection = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown form section",
		http.StatusBadRequest,
	)
	ErrSectionLocked = apperror.New(
		apperror.CodeInvalidState,
		"Complete the previous sections first",
		http.StatusUnprocessableEntity,
	)
	ErrWizardAtStart = apperror.New(
		apperror.CodeInvalidState,
		"Already at the first section",
		http.StatusUnprocessableEntity,
	)
	ErrEducationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"At least one education entry is required",
		http.StatusBadRequest,
	)
	ErrMultipleCurrentEmployers = apperror.New(
		apperror.CodeInvalidInput,
		"Only one employment entry can be marked as current",
		http.StatusBadRequest,
	)
	ErrEmploymentDates = apperror.New(
		apperror.CodeInvalidInput,
		"Employment end date must not be before its start date",
		http.StatusBadRequest,
	)
	ErrPANRequired = apperror.New(
		apperror.CodeInvalidInput,
		"PAN is required",
		http.StatusBadRequest,
	)
)
