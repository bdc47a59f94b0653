package feedback

import (
	"errors"

	feedbackerrors "go-ats/internal/feedback/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return feedbackerrors.ErrFeedbackNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_feedback_interview_reviewer" {
		return feedbackerrors.ErrFeedbackAlreadySubmitted
	}
	return err
}
