package feedback

import (
	"context"
	"database/sql"

	"go-ats/internal/shared/connection"
	"go-ats/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=feedback_repo.go -destination=mock/feedback_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, f *Feedback) error
	FindByInterview(ctx context.Context, companyID, interviewID string) ([]Feedback, error)
	FindByCandidate(ctx context.Context, companyID, candidateID string) ([]Feedback, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Feedback, error)
	Update(ctx context.Context, f *Feedback) error
	Delete(ctx context.Context, companyID, id string) error
	FindInterview(ctx context.Context, companyID, interviewID string) (*InterviewRef, error)
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

func (r *repository) Create(ctx context.Context, f *Feedback) error {
	return r.conn(ctx).Create(f).Error
}

func (r *repository) FindByInterview(ctx context.Context, companyID, interviewID string) ([]Feedback, error) {
	var list []Feedback
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("interview_id = ?", interviewID).
		Order("created_at").
		Find(&list).Error
	return list, err
}

func (r *repository) FindByCandidate(ctx context.Context, companyID, candidateID string) ([]Feedback, error) {
	var list []Feedback
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("candidate_id = ?", candidateID).
		Order("created_at").
		Find(&list).Error
	return list, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Feedback, error) {
	var f Feedback
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) Update(ctx context.Context, f *Feedback) error {
	return r.conn(ctx).Save(f).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Feedback{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindInterview(ctx context.Context, companyID, interviewID string) (*InterviewRef, error) {
	var ref InterviewRef
	err := r.conn(ctx).
		Table("interviews").
		Select("id", "candidate_id", "status").
		Where("id = ?", interviewID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Take(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
