package company

import (
	"context"

	companyerrors "go-ats/internal/company/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	GetByID(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	UpsertRegistration(ctx context.Context, reg *CompanyRegistration) error
	ListRegistrations(ctx context.Context, companyID string) ([]CompanyRegistration, error)
	DeleteRegistration(ctx context.Context, companyID string, regType RegistrationType) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Company, error) {
	var company Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, mapRepositoryError(err, companyerrors.ErrCompanyNotFound)
	}
	return &company, nil
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	return mapRepositoryError(r.db.WithContext(ctx).Save(company).Error, companyerrors.ErrCompanyNotFound)
}

// UpsertRegistration keeps one number per (company, type).
func (r *repository) UpsertRegistration(ctx context.Context, reg *CompanyRegistration) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"number", "issued_at", "updated_at"}),
		}).
		Create(reg).Error
}

func (r *repository) ListRegistrations(ctx context.Context, companyID string) ([]CompanyRegistration, error) {
	var regs []CompanyRegistration
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("type ASC").
		Find(&regs).Error
	return regs, err
}

func (r *repository) DeleteRegistration(ctx context.Context, companyID string, regType RegistrationType) error {
	res := r.db.WithContext(ctx).
		Where("company_id = ? AND type = ?", companyID, regType).
		Delete(&CompanyRegistration{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return companyerrors.ErrRegistrationNotFound
	}
	return nil
}
