package salaryerrors

import (
	"net/http"

	"go-ats/internal/shared/apperror"
)

var (
	ErrInvalidCTC = apperror.New(
		apperror.CodeInvalidInput,
		"annual CTC must be a positive whole rupee amount",
		http.StatusBadRequest,
	)
	ErrInvalidIncome = apperror.New(
		apperror.CodeInvalidInput,
		"annual income cannot be negative",
		http.StatusBadRequest,
	)
	ErrBreakdownMismatch = apperror.New(
		apperror.CodeInternalError,
		"salary breakdown does not add up to CTC",
		http.StatusInternalServerError,
	)
)
