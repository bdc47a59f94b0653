package rbac

import (
	"errors"

	rbacerrors "go-ats/internal/rbac/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rbacerrors.ErrRoleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_roles_company_name":
			return rbacerrors.ErrRoleNameTaken
		case pgErr.Code == "23503" && pgErr.ConstraintName == "fk_role_permissions_permission":
			return rbacerrors.ErrInvalidPermission
		}
	}

	return err
}
