package counter

import (
	"context"
	"database/sql"
	"fmt"

	"go-ats/internal/shared/connection"

	"gorm.io/gorm"
)

const (
	TypeCandidateNumber = "candidate_number"
	TypeOfferNumber     = "offer_number"
)

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds the counter to tx, so a rolled back insert also releases
// its number.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	var nextValue int64

	// atomic upsert per (company, counter type)
	err := connection.GormConn(ctx, r.db, r.tx).Raw(`
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, companyID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// NextNumber returns a human readable sequence number such as CAN-000042.
func NextNumber(ctx context.Context, repo Repository, companyID, counterType, prefix string) (string, error) {
	v, err := repo.GetNextValue(ctx, companyID, counterType)
	if err != nil {
		return "", err
	}
	return Format(prefix, v), nil
}

func Format(prefix string, v int64) string {
	return fmt.Sprintf("%s-%06d", prefix, v)
}
