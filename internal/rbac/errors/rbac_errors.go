package rbacerrors

import (
	"net/http"

	"go-ats/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrRoleNameTaken = apperror.New(
		apperror.CodeConflict,
		"Role with the same name already exists",
		http.StatusConflict,
	)
	ErrProtectedRole = apperror.New(
		apperror.CodeInvalidState,
		"Built-in OWNER role cannot be changed or deleted",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidPermission = apperror.New(
		apperror.CodeInvalidInput,
		"One or more permissions do not exist",
		http.StatusBadRequest,
	)
	ErrInvalidEnforceRequest = apperror.New(
		apperror.CodeInvalidInput,
		"user_id, company_id, resource, and action are required",
		http.StatusBadRequest,
	)
)
