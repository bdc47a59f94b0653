package candidate

import (
	"errors"
	"strings"

	candidateerrors "go-ats/internal/candidate/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return candidateerrors.ErrCandidateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_candidate_number":
			return candidateerrors.ErrCandidateNumberAlreadyExists
		case "uq_candidate_email":
			return candidateerrors.ErrCandidateAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_candidate_email") {
		return candidateerrors.ErrCandidateAlreadyExists
	}

	return err
}
