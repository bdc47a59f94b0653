package offerletter

import (
	"errors"
	"strings"

	offerlettererrors "go-ats/internal/offerletter/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return offerlettererrors.ErrOfferNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_offer_number" {
		return offerlettererrors.ErrOfferNumberExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "uq_offer_number") {
		return offerlettererrors.ErrOfferNumberExists
	}

	return err
}
