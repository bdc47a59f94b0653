package rbac

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go-ats/internal/domain"
	rbacerrors "go-ats/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const ownerRole = "OWNER"

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req domain.EnforceRequest) (bool, error)

	ListRoles(ctx context.Context, companyID string) ([]domain.RoleResponse, error)
	GetRole(ctx context.Context, companyID, id string) (domain.RoleResponse, error)
	CreateRole(ctx context.Context, companyID string, req domain.CreateRoleRequest) (domain.RoleResponse, error)
	UpdateRole(ctx context.Context, companyID, id string, req domain.UpdateRoleRequest) (domain.RoleResponse, error)
	DeleteRole(ctx context.Context, companyID, id string) error

	ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error)
	GetPermissionMatrix(ctx context.Context, companyID, roleID string) (domain.PermissionMatrix, error)
	UpdateRolePermissions(ctx context.Context, companyID, roleID string, req domain.UpdateRolePermissionsRequest) (domain.PermissionMatrix, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

// The enforcer holds one company's policy at a time; callers must hold s.mu.
func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	s.enforcer.ClearPolicy()

	userRoles, err := s.repo.GetUserRoles(companyID)
	if err != nil {
		return err
	}
	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.RoleID, companyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(companyID)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("company policy loaded",
		zap.String("company_id", companyID),
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.CompanyID) == "" ||
		strings.TrimSpace(req.Resource) == "" || strings.TrimSpace(req.Action) == "" {
		return false, rbacerrors.ErrInvalidEnforceRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("company_id", req.CompanyID),
			zap.String("permission", req.Resource+":"+req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("user_id", req.UserID),
		zap.String("company_id", req.CompanyID),
		zap.String("permission", req.Resource+":"+req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context, companyID string) ([]domain.RoleResponse, error) {
	rows, err := s.repo.ListRoles(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RoleResponse, 0, len(rows))
	for _, row := range rows {
		perms, err := s.repo.GetPermissionsByRoleID(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toRoleResponse(row, perms))
	}
	return out, nil
}

func (s *service) GetRole(ctx context.Context, companyID, id string) (domain.RoleResponse, error) {
	role, err := s.findRole(ctx, companyID, id)
	if err != nil {
		return domain.RoleResponse{}, err
	}
	perms, err := s.repo.GetPermissionsByRoleID(ctx, role.ID)
	if err != nil {
		return domain.RoleResponse{}, err
	}
	return toRoleResponse(*role, perms), nil
}

func (s *service) CreateRole(ctx context.Context, companyID string, req domain.CreateRoleRequest) (domain.RoleResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if err := s.ensureNameFree(ctx, companyID, name, ""); err != nil {
		return domain.RoleResponse{}, err
	}
	if err := s.validatePermissionIDs(ctx, req.Permissions); err != nil {
		return domain.RoleResponse{}, err
	}

	role := &RoleRow{
		CompanyID:   companyID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.CreateRole(ctx, role); err != nil {
		return domain.RoleResponse{}, mapRepositoryError(err)
	}
	if len(req.Permissions) > 0 {
		if err := s.repo.UpdateRolePermissions(ctx, role.ID, req.Permissions); err != nil {
			return domain.RoleResponse{}, mapRepositoryError(err)
		}
	}

	s.logger.Info("role created", zap.String("company_id", companyID), zap.String("role_id", role.ID), zap.String("name", name))
	return s.GetRole(ctx, companyID, role.ID)
}

func (s *service) UpdateRole(ctx context.Context, companyID, id string, req domain.UpdateRoleRequest) (domain.RoleResponse, error) {
	role, err := s.findRole(ctx, companyID, id)
	if err != nil {
		return domain.RoleResponse{}, err
	}
	if role.Name == ownerRole {
		return domain.RoleResponse{}, rbacerrors.ErrProtectedRole
	}

	if name := strings.ToUpper(strings.TrimSpace(req.Name)); name != "" && name != role.Name {
		if err := s.ensureNameFree(ctx, companyID, name, role.ID); err != nil {
			return domain.RoleResponse{}, err
		}
		role.Name = name
	}
	if req.Description != "" {
		role.Description = strings.TrimSpace(req.Description)
	}

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return domain.RoleResponse{}, mapRepositoryError(err)
	}

	// nil leaves grants untouched; an empty slice revokes everything
	if req.Permissions != nil {
		if err := s.validatePermissionIDs(ctx, req.Permissions); err != nil {
			return domain.RoleResponse{}, err
		}
		if err := s.repo.UpdateRolePermissions(ctx, role.ID, req.Permissions); err != nil {
			return domain.RoleResponse{}, mapRepositoryError(err)
		}
	}

	return s.GetRole(ctx, companyID, role.ID)
}

func (s *service) DeleteRole(ctx context.Context, companyID, id string) error {
	role, err := s.findRole(ctx, companyID, id)
	if err != nil {
		return err
	}
	if role.Name == ownerRole {
		return rbacerrors.ErrProtectedRole
	}
	if err := s.repo.DeleteRole(ctx, role.ID); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("role deleted", zap.String("company_id", companyID), zap.String("role_id", role.ID))
	return nil
}

func (s *service) ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error) {
	rows, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PermissionResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPermissionResponse(p))
	}
	return out, nil
}

func (s *service) GetPermissionMatrix(ctx context.Context, companyID, roleID string) (domain.PermissionMatrix, error) {
	role, err := s.findRole(ctx, companyID, roleID)
	if err != nil {
		return domain.PermissionMatrix{}, err
	}

	all, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return domain.PermissionMatrix{}, err
	}
	granted, err := s.repo.GetPermissionsByRoleID(ctx, role.ID)
	if err != nil {
		return domain.PermissionMatrix{}, err
	}

	return buildMatrix(*role, all, granted), nil
}

func (s *service) UpdateRolePermissions(
	ctx context.Context,
	companyID, roleID string,
	req domain.UpdateRolePermissionsRequest,
) (domain.PermissionMatrix, error) {
	role, err := s.findRole(ctx, companyID, roleID)
	if err != nil {
		return domain.PermissionMatrix{}, err
	}
	if role.Name == ownerRole {
		return domain.PermissionMatrix{}, rbacerrors.ErrProtectedRole
	}
	if err := s.validatePermissionIDs(ctx, req.PermissionIDs); err != nil {
		return domain.PermissionMatrix{}, err
	}

	if err := s.repo.UpdateRolePermissions(ctx, role.ID, dedupe(req.PermissionIDs)); err != nil {
		return domain.PermissionMatrix{}, mapRepositoryError(err)
	}

	s.logger.Info("role permissions updated",
		zap.String("company_id", companyID),
		zap.String("role_id", role.ID),
		zap.Int("count", len(req.PermissionIDs)),
	)
	return s.GetPermissionMatrix(ctx, companyID, role.ID)
}

// findRole hides roles of other companies behind not-found.
func (s *service) findRole(ctx context.Context, companyID, id string) (*RoleRow, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if role.CompanyID != companyID {
		return nil, rbacerrors.ErrRoleNotFound
	}
	return role, nil
}

func (s *service) ensureNameFree(ctx context.Context, companyID, name, selfID string) error {
	existing, err := s.repo.GetRoleByName(ctx, companyID, name)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return rbacerrors.ErrRoleNameTaken
	}
	return nil
}

func (s *service) validatePermissionIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	all, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(all))
	for _, p := range all {
		known[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return rbacerrors.ErrInvalidPermission
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toPermissionResponse(p PermissionRow) domain.PermissionResponse {
	return domain.PermissionResponse{
		ID:       p.ID,
		Resource: p.Resource,
		Action:   p.Action,
		Label:    p.Label,
		Category: p.Category,
	}
}

func toRoleResponse(row RoleRow, perms []PermissionRow) domain.RoleResponse {
	keys := make([]string, 0, len(perms))
	for _, p := range perms {
		keys = append(keys, p.Resource+":"+p.Action)
	}
	return domain.RoleResponse{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Permissions: keys,
	}
}

// buildMatrix keeps the category order of the permission catalogue.
func buildMatrix(role RoleRow, all, granted []PermissionRow) domain.PermissionMatrix {
	has := make(map[string]bool, len(granted))
	for _, g := range granted {
		has[g.ID] = true
	}

	matrix := domain.PermissionMatrix{
		RoleID:     role.ID,
		RoleName:   role.Name,
		Categories: []domain.PermissionMatrixCategory{},
	}
	index := map[string]int{}
	for _, p := range all {
		i, ok := index[p.Category]
		if !ok {
			i = len(matrix.Categories)
			index[p.Category] = i
			matrix.Categories = append(matrix.Categories, domain.PermissionMatrixCategory{Category: p.Category})
		}
		matrix.Categories[i].Permissions = append(matrix.Categories[i].Permissions, domain.PermissionMatrixEntry{
			PermissionResponse: toPermissionResponse(p),
			Granted:            has[p.ID],
		})
	}
	return matrix
}
