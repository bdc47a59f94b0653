package app

import (
	"fmt"

	"go-ats/internal/candidate"
	"go-ats/internal/company"
	"go-ats/internal/emailtemplate"
	"go-ats/internal/feedback"
	"go-ats/internal/interview"
	"go-ats/internal/offerletter"
	"go-ats/internal/rbac"
	"go-ats/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS role_permissions (
		role_id UUID NOT NULL,
		permission_id UUID NOT NULL,
		PRIMARY KEY (role_id, permission_id)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_permission_resource_action ON permissions (resource, action)`,
	`CREATE TABLE IF NOT EXISTS company_counters (
		company_id UUID NOT NULL,
		counter_type VARCHAR(50) NOT NULL,
		last_value BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (company_id, counter_type)
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id UUID PRIMARY KEY,
		request_id VARCHAR(64),
		aggregate_type VARCHAR(50) NOT NULL,
		aggregate_id UUID NOT NULL,
		event_type VARCHAR(100) NOT NULL,
		topic VARCHAR(150) NOT NULL,
		payload JSONB NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		retry_count INT NOT NULL DEFAULT 0,
		next_retry_at TIMESTAMPTZ,
		error_message TEXT,
		processed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending ON outbox_events (status, next_retry_at, created_at)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_roles_company_name ON roles (company_id, name)`,
}

// liveUniqueIndexes only constrain rows that are not soft-deleted, so a
// deleted candidate, feedback or template does not block re-creating it.
// Older schemas carried full unique indexes under the same names.
var liveUniqueIndexes = []struct {
	Name  string
	Table string
	Def   string
}{
	{"uq_candidate_email", "candidates", "(company_id, email) WHERE deleted_at IS NULL AND email <> ''"},
	{"uq_feedback_interview_reviewer", "interview_feedback", "(interview_id, reviewer_id) WHERE deleted_at IS NULL"},
	{"uq_email_template_name", "email_templates", "(company_id, name) WHERE deleted_at IS NULL"},
}

func liveUniqueIndexStatements() []string {
	stmts := make([]string, 0, len(liveUniqueIndexes))
	for _, idx := range liveUniqueIndexes {
		stmts = append(stmts, fmt.Sprintf(
			`DO $$ BEGIN
	IF EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = '%[1]s' AND indexdef NOT LIKE '%%WHERE%%') THEN
		DROP INDEX %[1]s;
	END IF;
END $$`, idx.Name),
			fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s %s", idx.Name, idx.Table, idx.Def),
		)
	}
	return stmts
}

func migrate(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&company.Company{},
		&company.CompanyRegistration{},
		&user.User{},
		&user.UserRole{},
		&rbac.RoleRow{},
		&rbac.PermissionRow{},
		&candidate.Candidate{},
		&interview.Interview{},
		&feedback.Feedback{},
		&offerletter.OfferLetter{},
		&emailtemplate.EmailTemplate{},
	)
	if err != nil {
		return err
	}

	for _, stmt := range append(schemaStatements, liveUniqueIndexStatements()...) {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	if err := seedPermissions(db); err != nil {
		return err
	}
	logger.Info("database schema up to date", zap.Int("permissions", len(permissionCatalog)))
	return nil
}

func seedPermissions(db *gorm.DB) error {
	rows := make([]rbac.PermissionRow, len(permissionCatalog))
	for i, p := range permissionCatalog {
		rows[i] = rbac.PermissionRow{Resource: p.Resource, Action: p.Action, Label: p.Label, Category: p.Category}
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "resource"}, {Name: "action"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "category"}),
	}).Create(&rows).Error
}
