package user

import (
	"context"
	"strings"

	"go-ats/internal/tenant"
	usererrors "go-ats/internal/user/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, companyID, id string) (*User, error)
	FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]User, error)
	FindAllByCompanyWithRoles(ctx context.Context, companyID string) ([]UserWithRolesRow, error)
	Update(ctx context.Context, u *User) error
	ReplaceRole(ctx context.Context, companyID, userID, roleName string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(u).Error)
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &u, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]User, error) {
	var users []User
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if s := strings.TrimSpace(filter.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("name ASC").Find(&users).Error
	return users, err
}

func (r *repository) FindAllByCompanyWithRoles(ctx context.Context, companyID string) ([]UserWithRolesRow, error) {
	var rows []UserWithRolesRow
	err := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.id::text AS id, u.name, u.email, u.role, u.is_active, u.created_at,
			COALESCE(string_agg(roles.name, ',' ORDER BY roles.name), '') AS roles_raw`).
		Joins("LEFT JOIN user_roles ur ON ur.user_id = u.id").
		Joins("LEFT JOIN roles ON roles.id = ur.role_id AND roles.company_id = u.company_id").
		Scopes(tenant.ScopeTable("u", companyID)).
		Where("u.deleted_at IS NULL").
		Group("u.id").
		Order("u.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return mapRepositoryError(r.db.WithContext(ctx).Save(u).Error)
}

// ReplaceRole swaps every role of the user for roleName and mirrors it on the
// users.role column.
func (r *repository) ReplaceRole(ctx context.Context, companyID, userID, roleName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roleID string
		err := tx.Table("roles").
			Select("id::text").
			Where("company_id = ? AND UPPER(name) = ?", companyID, roleName).
			Limit(1).
			Scan(&roleID).Error
		if err != nil {
			return err
		}
		if roleID == "" {
			return usererrors.ErrRoleNotFound
		}

		res := tx.Model(&User{}).
			Scopes(tenant.Scope(companyID)).
			Where("id = ?", userID).
			Update("role", roleName)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usererrors.ErrUserNotFound
		}

		if err := tx.Where("user_id = ?", userID).Delete(&UserRole{}).Error; err != nil {
			return err
		}
		return tx.Create(&UserRole{
			UserID: uuid.MustParse(userID),
			RoleID: uuid.MustParse(roleID),
		}).Error
	})
}

