package interview

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-ats/internal/shared/connection"
	"go-ats/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=interview_repo.go -destination=mock/interview_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, i *Interview) error
	FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Interview, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Interview, error)
	Update(ctx context.Context, i *Interview) error
	Delete(ctx context.Context, companyID, id string) error
	CandidateStage(ctx context.Context, companyID, candidateID string) (string, error)
	PromoteCandidate(ctx context.Context, companyID, candidateID string) error
	InterviewerBelongsToCompany(ctx context.Context, companyID, interviewerID string) (bool, error)
	HasOverlappingSlot(ctx context.Context, companyID, interviewerID string, start time.Time, minutes int, excludeID *string) (bool, error)
	NextRound(ctx context.Context, companyID, candidateID string) (int, error)
	HasFeedback(ctx context.Context, companyID, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, i *Interview) error {
	return r.conn(ctx).Create(i).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Interview, error) {
	var interviews []Interview
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if filter.CandidateID != "" {
		q = q.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.InterviewerID != "" {
		q = q.Where("interviewer_id = ?", filter.InterviewerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("scheduled_at DESC").Find(&interviews).Error
	return interviews, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Interview, error) {
	var i Interview
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&i, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repository) Update(ctx context.Context, i *Interview) error {
	return r.conn(ctx).Save(i).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Interview{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CandidateStage returns "" when the candidate is not in the company.
func (r *repository) CandidateStage(ctx context.Context, companyID, candidateID string) (string, error) {
	var stage string
	err := r.conn(ctx).
		Table("candidates").
		Select("stage").
		Where("id = ?", candidateID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Take(&stage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return stage, err
}

// PromoteCandidate moves an early-stage candidate into INTERVIEW.
func (r *repository) PromoteCandidate(ctx context.Context, companyID, candidateID string) error {
	return r.conn(ctx).
		Table("candidates").
		Where("id = ?", candidateID).
		Where("company_id = ?", companyID).
		Where("stage IN ?", []string{"APPLIED", "SCREENING"}).
		Updates(map[string]any{"stage": "INTERVIEW", "updated_at": time.Now()}).Error
}

func (r *repository) InterviewerBelongsToCompany(ctx context.Context, companyID, interviewerID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("users").
		Where("id = ?", interviewerID).
		Where("company_id = ?", companyID).
		Where("is_active = ?", true).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasOverlappingSlot(
	ctx context.Context,
	companyID, interviewerID string,
	start time.Time,
	minutes int,
	excludeID *string,
) (bool, error) {
	end := start.Add(time.Duration(minutes) * time.Minute)
	db := r.conn(ctx).
		Model(&Interview{}).
		Scopes(tenant.Scope(companyID)).
		Where("interviewer_id = ?", interviewerID).
		Where("status = ?", StatusScheduled).
		Where("scheduled_at < ?", end).
		Where("scheduled_at + make_interval(mins => duration_minutes) > ?", start)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) NextRound(ctx context.Context, companyID, candidateID string) (int, error) {
	var maxRound sql.NullInt64
	err := r.conn(ctx).
		Model(&Interview{}).
		Scopes(tenant.Scope(companyID)).
		Where("candidate_id = ?", candidateID).
		Select("MAX(round)").
		Scan(&maxRound).Error
	if err != nil {
		return 0, err
	}
	return int(maxRound.Int64) + 1, nil
}

func (r *repository) HasFeedback(ctx context.Context, companyID, id string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("interview_feedback").
		Where("interview_id = ?", id).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
