package candidate

import (
	"context"
	"database/sql"
	"strings"

	"go-ats/internal/shared/connection"
	"go-ats/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=candidate_repo.go -destination=mock/candidate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Candidate) error
	FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Candidate, error)
	FindOptionsByCompany(ctx context.Context, companyID string) ([]Candidate, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Candidate, error)
	Update(ctx context.Context, c *Candidate) error
	Delete(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, c *Candidate) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Candidate, error) {
	var candidates []Candidate
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if filter.Stage != "" {
		q = q.Where("stage = ?", filter.Stage)
	}
	if term := strings.TrimSpace(filter.Q); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("(LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(candidate_number) LIKE ?)", like, like, like)
	}
	err := q.Order("created_at DESC").Find(&candidates).Error
	return candidates, err
}

// FindOptionsByCompany returns candidates still in the pipeline.
func (r *repository) FindOptionsByCompany(ctx context.Context, companyID string) ([]Candidate, error) {
	var candidates []Candidate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Select("id", "company_id", "candidate_number", "full_name", "email", "stage").
		Where("stage NOT IN ?", []Stage{StageHired, StageRejected, StageWithdrawn}).
		Order("full_name").
		Find(&candidates).Error
	return candidates, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Candidate, error) {
	var c Candidate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Candidate) error {
	return r.conn(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Candidate{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
