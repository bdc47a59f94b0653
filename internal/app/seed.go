package app

import (
	"errors"
	"strings"

	"go-ats/internal/company"
	"go-ats/internal/rbac"
	"go-ats/internal/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seededRoles = []struct {
	Name        string
	Description string
}{
	{user.RoleOwner, "Full access, cannot be edited"},
	{user.RoleAdmin, "Manages the hiring team and settings"},
	{user.RoleHR, "Runs offers and candidate records"},
	{user.RoleRecruiter, "Sources candidates and schedules interviews"},
	{user.RoleHiringManager, "Reviews candidates for their openings"},
	{user.RoleInterviewer, "Conducts interviews and submits feedback"},
}

// seedTenant makes sure the configured company, its default roles and its
// owner account exist. Grants are only written for roles created here so an
// admin's later edits survive restarts.
func seedTenant(db *gorm.DB, cfg Config, logger *zap.Logger) error {
	if strings.TrimSpace(cfg.SeedOwnerEmail) == "" || cfg.SeedOwnerPassword == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		comp, err := ensureCompany(tx, cfg.SeedCompanyName)
		if err != nil {
			return err
		}
		companyID := comp.ID.String()

		var perms []rbac.PermissionRow
		if err := tx.Find(&perms).Error; err != nil {
			return err
		}

		roleIDs := make(map[string]string, len(seededRoles))
		for _, r := range seededRoles {
			var role rbac.RoleRow
			err := tx.Where("company_id = ? AND name = ?", companyID, r.Name).First(&role).Error
			if err == nil {
				roleIDs[r.Name] = role.ID
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			role = rbac.RoleRow{CompanyID: companyID, Name: r.Name, Description: r.Description}
			if err := tx.Create(&role).Error; err != nil {
				return err
			}
			roleIDs[r.Name] = role.ID

			for _, p := range perms {
				if !grantedTo(r.Name, permissionSeed{Resource: p.Resource, Action: p.Action}) {
					continue
				}
				if err := tx.Exec(
					"INSERT INTO role_permissions (role_id, permission_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
					role.ID, p.ID,
				).Error; err != nil {
					return err
				}
			}
			logger.Info("seeded role", zap.String("company_id", companyID), zap.String("role", r.Name))
		}

		return ensureOwner(tx, comp, roleIDs[user.RoleOwner], cfg, logger)
	})
}

func ensureCompany(tx *gorm.DB, name string) (*company.Company, error) {
	var comp company.Company
	err := tx.Where("name = ?", name).First(&comp).Error
	if err == nil {
		return &comp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	comp = company.Company{Name: name, IsActive: true}
	if err := tx.Create(&comp).Error; err != nil {
		return nil, err
	}
	return &comp, nil
}

func ensureOwner(tx *gorm.DB, comp *company.Company, ownerRoleID string, cfg Config, logger *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.SeedOwnerEmail))

	var existing user.User
	err := tx.Where("LOWER(email) = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedOwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := user.User{
		CompanyID: comp.ID,
		Name:      cfg.SeedOwnerName,
		Role:      user.RoleOwner,
		Email:     email,
		Password:  string(hash),
		IsActive:  true,
	}
	if err := tx.Create(&owner).Error; err != nil {
		return err
	}
	if err := tx.Exec(
		"INSERT INTO user_roles (user_id, role_id, created_at) VALUES (?, ?, now()) ON CONFLICT DO NOTHING",
		owner.ID, ownerRoleID,
	).Error; err != nil {
		return err
	}

	logger.Info("seeded owner account", zap.String("company_id", comp.ID.String()), zap.String("email", email))
	return nil
}
