package emailtemplate

import (
	"errors"

	emailtemplateerrors "go-ats/internal/emailtemplate/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return emailtemplateerrors.ErrTemplateNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_email_template_name" {
		return emailtemplateerrors.ErrTemplateNameExists
	}
	return err
}
