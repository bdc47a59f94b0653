package interviewerrors

import (
	"net/http"

	"go-ats/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidInterviewID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid interview id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidScheduleFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid scheduled_at, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrScheduleInPast = apperror.New(
		apperror.CodeInvalidInput,
		"scheduled_at must be in the future",
		http.StatusBadRequest,
	)
	ErrMeetingLinkRequired = apperror.New(
		apperror.CodeInvalidInput,
		"meeting_link is required for online interviews",
		http.StatusBadRequest,
	)
	ErrLocationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"location is required for onsite interviews",
		http.StatusBadRequest,
	)
	ErrCandidateNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"candidate does not belong to this company",
		http.StatusBadRequest,
	)
	ErrInterviewerNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"interviewer does not belong to this company",
		http.StatusBadRequest,
	)
	ErrCandidateClosed = apperror.New(
		apperror.CodeInvalidState,
		"candidate is no longer in the pipeline",
		http.StatusUnprocessableEntity,
	)
	ErrInterviewerBusy = apperror.New(
		apperror.CodeConflict,
		"interviewer already has an interview in this slot",
		http.StatusConflict,
	)
	ErrInterviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"interview not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"interview is no longer scheduled",
		http.StatusUnprocessableEntity,
	)
	ErrInterviewNotStarted = apperror.New(
		apperror.CodeInvalidState,
		"interview has not started yet",
		http.StatusUnprocessableEntity,
	)
	ErrCancelReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required when cancelling an interview",
		http.StatusBadRequest,
	)
	ErrInterviewHasFeedback = apperror.New(
		apperror.CodeInvalidState,
		"interview with feedback cannot be deleted",
		http.StatusUnprocessableEntity,
	)
)
