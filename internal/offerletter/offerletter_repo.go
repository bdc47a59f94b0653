package offerletter

import (
	"context"
	"database/sql"

	"go-ats/internal/company"
	"go-ats/internal/shared/connection"
	"go-ats/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=offerletter_repo.go -destination=mock/offerletter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, o *OfferLetter) error
	FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]OfferLetter, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*OfferLetter, error)
	Update(ctx context.Context, o *OfferLetter) error
	Delete(ctx context.Context, companyID, id string) error
	HasActiveOffer(ctx context.Context, companyID, candidateID string) (bool, error)
	CompanyLetterhead(ctx context.Context, companyID string) (Letterhead, error)
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

func (r *repository) Create(ctx context.Context, o *OfferLetter) error {
	return mapRepositoryError(r.conn(ctx).Create(o).Error)
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]OfferLetter, error) {
	var offers []OfferLetter
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if filter.CandidateID != "" {
		q = q.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("created_at DESC").Find(&offers).Error
	return offers, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*OfferLetter, error) {
	var o OfferLetter
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &o, nil
}

func (r *repository) Update(ctx context.Context, o *OfferLetter) error {
	return mapRepositoryError(r.conn(ctx).Save(o).Error)
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&OfferLetter{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return mapRepositoryError(gorm.ErrRecordNotFound)
	}
	return nil
}

// HasActiveOffer reports whether the candidate already holds a draft or sent offer.
func (r *repository) HasActiveOffer(ctx context.Context, companyID, candidateID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&OfferLetter{}).
		Scopes(tenant.Scope(companyID)).
		Where("candidate_id = ? AND status IN ?", candidateID, []string{StatusDraft, StatusSent}).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CompanyLetterhead(ctx context.Context, companyID string) (Letterhead, error) {
	var comp company.Company
	err := r.conn(ctx).
		Select("name", "address", "city", "state", "pin_code", "offer_signatory_name", "offer_signatory_title").
		Where("id = ?", companyID).
		Limit(1).
		Find(&comp).Error
	if err != nil {
		return Letterhead{}, err
	}
	return Letterhead{
		Name:           comp.Name,
		Address:        comp.Address,
		PostalLine:     comp.PostalLine(),
		SignatoryName:  comp.OfferSignatoryName,
		SignatoryTitle: comp.OfferSignatoryTitle,
	}, nil
}
