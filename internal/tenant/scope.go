package tenant

import (
	"errors"

	"gorm.io/gorm"
)

// ErrMissingTenant is returned by a scoped query run without a company id.
var ErrMissingTenant = errors.New("tenant: company id is required")

// Scope restricts a query to rows owned by companyID.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return ScopeTable("", companyID)
}

// ScopeTable is Scope for joins, where company_id must be qualified with the
// table or alias that owns it. An empty companyID fails the query instead of
// matching every tenant.
func ScopeTable(table, companyID string) func(db *gorm.DB) *gorm.DB {
	column := "company_id"
	if table != "" {
		column = table + ".company_id"
	}
	return func(db *gorm.DB) *gorm.DB {
		if companyID == "" {
			_ = db.AddError(ErrMissingTenant)
			return db
		}
		return db.Where(column+" = ?", companyID)
	}
}
