package tenant_test

import (
	"testing"

	"go-ats/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	ID string
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestScope(t *testing.T) {
	db := dryRunDB(t)

	var rows []row
	stmt := db.Table("candidates").Scopes(tenant.Scope("company-1")).Find(&rows).Statement

	assert.Contains(t, stmt.SQL.String(), "company_id = $1")
	assert.Equal(t, []any{"company-1"}, stmt.Vars)
}

func TestScopeTable_QualifiesJoinedColumn(t *testing.T) {
	db := dryRunDB(t)

	var rows []row
	stmt := db.Table("user_roles").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Scopes(tenant.ScopeTable("roles", "company-1")).
		Find(&rows).Statement

	assert.Contains(t, stmt.SQL.String(), "roles.company_id = $1")
}

func TestScopeTable_MissingTenantFailsClosed(t *testing.T) {
	db := dryRunDB(t)

	var rows []row
	err := db.Table("candidates").Scopes(tenant.Scope("")).Find(&rows).Error

	assert.ErrorIs(t, err, tenant.ErrMissingTenant)
}
