package feedbackerrors

import (
	"net/http"

	"go-ats/internal/shared/apperror"
)

var (
	ErrInvalidFeedbackID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid feedback id",
		http.StatusBadRequest,
	)
	ErrInvalidReviewerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid reviewer id",
		http.StatusBadRequest,
	)
	ErrInterviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"interview not found",
		http.StatusNotFound,
	)
	ErrInterviewNotCompleted = apperror.New(
		apperror.CodeInvalidState,
		"feedback can only be given for a completed interview",
		http.StatusUnprocessableEntity,
	)
	ErrFeedbackAlreadySubmitted = apperror.New(
		apperror.CodeConflict,
		"you already submitted feedback for this interview",
		http.StatusConflict,
	)
	ErrFeedbackNotFound = apperror.New(
		apperror.CodeNotFound,
		"feedback not found",
		http.StatusNotFound,
	)
	ErrNotFeedbackOwner = apperror.New(
		apperror.CodeForbidden,
		"only the reviewer can change this feedback",
		http.StatusForbidden,
	)
)
