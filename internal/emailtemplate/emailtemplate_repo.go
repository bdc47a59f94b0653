package emailtemplate

import (
	"context"
	"database/sql"

	"go-ats/internal/shared/connection"
	"go-ats/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=emailtemplate_repo.go -destination=mock/emailtemplate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *EmailTemplate) error
	FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]EmailTemplate, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*EmailTemplate, error)
	FindActiveByType(ctx context.Context, companyID, templateType string) (*EmailTemplate, error)
	Update(ctx context.Context, t *EmailTemplate) error
	Delete(ctx context.Context, companyID, id string) error
	DeactivateType(ctx context.Context, companyID, templateType, exceptID string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.GormConn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, t *EmailTemplate) error {
	return mapRepositoryError(r.conn(ctx).Create(t).Error)
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]EmailTemplate, error) {
	var templates []EmailTemplate
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	err := q.Order("type, name").Find(&templates).Error
	return templates, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*EmailTemplate, error) {
	var t EmailTemplate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &t, nil
}

func (r *repository) FindActiveByType(ctx context.Context, companyID, templateType string) (*EmailTemplate, error) {
	var t EmailTemplate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("type = ? AND is_active = ?", templateType, true).
		Order("updated_at DESC").
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *EmailTemplate) error {
	return mapRepositoryError(r.conn(ctx).Save(t).Error)
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&EmailTemplate{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return mapRepositoryError(gorm.ErrRecordNotFound)
	}
	return nil
}

// DeactivateType keeps a single active template per type.
func (r *repository) DeactivateType(ctx context.Context, companyID, templateType, exceptID string) error {
	return r.conn(ctx).
		Model(&EmailTemplate{}).
		Scopes(tenant.Scope(companyID)).
		Where("type = ? AND id <> ? AND is_active = ?", templateType, exceptID, true).
		Update("is_active", false).Error
}
