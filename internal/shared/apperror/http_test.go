package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-ats/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrForbidden)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("load offer: %w", apperror.ErrNotFound)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})

	t.Run("validation error", func(t *testing.T) {
		type payload struct {
			Name string `validate:"required"`
		}
		err := validator.New().Struct(payload{})
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, "Name is required", got.Message)
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", 500))

	base := errors.New("boom")
	wrapped := apperror.Wrap(base, apperror.CodeInternalError, "render failed", http.StatusInternalServerError)
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "render failed: boom", wrapped.Error())
}

func TestWithDetails(t *testing.T) {
	err := apperror.ErrConflict.WithDetails(map[string]string{"field": "email"})

	assert.ErrorIs(t, err, apperror.ErrConflict, "copy still matches its sentinel")
	assert.Nil(t, apperror.ErrConflict.Details, "sentinel is not mutated")
	assert.NotErrorIs(t, err, apperror.ErrNotFound)

	got := apperror.ToHTTP(fmt.Errorf("create candidate: %w", err))
	assert.Equal(t, http.StatusConflict, got.Status)
	assert.Equal(t, map[string]string{"field": "email"}, got.Details)
}

func TestWithCause(t *testing.T) {
	cause := errors.New("pdf engine crashed")
	err := apperror.ErrInternal.WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, apperror.ErrInternal)
	assert.NotContains(t, apperror.ToHTTP(err).Message, "pdf engine")
}

func TestRequiredFieldDetails(t *testing.T) {
	got := apperror.ToHTTP(apperror.RequiredField("Personal"))
	assert.Equal(t, "Personal is required", got.Message)
	assert.Equal(t, map[string]string{"field": "Personal", "rule": "required"}, got.Details)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.StatusOf(apperror.CodeInvalidState))
	assert.Equal(t, http.StatusTooManyRequests, apperror.StatusOf(apperror.CodeRateLimited))
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusOf("SOMETHING_NEW"))

	got := apperror.ToHTTP(&apperror.AppError{Code: apperror.CodeNotFound, Message: "gone"})
	assert.Equal(t, http.StatusNotFound, got.Status, "status falls back to the code")
}
