package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-ats/internal/shared/contextutil"
	usererrors "go-ats/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]UserResponse, error)
	GetAllWithRoles(ctx context.Context, companyID string) ([]UserWithRolesResponse, error)
	GetByID(ctx context.Context, companyID, id string) (UserResponse, error)
	GetInterviewers(ctx context.Context, companyID string) ([]UserResponse, error)

	Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error)
	AssignRole(ctx context.Context, companyID, userID, roleName string) error
	ToggleStatus(ctx context.Context, companyID, actorID, id string, isActive bool) error

	ChangePassword(ctx context.Context, companyID, userID, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, companyID, userID, newPassword string) error
}

// PolicyLoader refreshes casbin groupings after a role change; rbac.Service satisfies it.
type PolicyLoader interface {
	LoadCompanyPolicy(companyID string) error
}

type service struct {
	repo   Repository
	policy PolicyLoader
	logger *zap.Logger
}

func NewService(repo Repository, policy PolicyLoader, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, policy: policy, logger: l}
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]UserResponse, error) {
	users, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetAllWithRoles(ctx context.Context, companyID string) ([]UserWithRolesResponse, error) {
	rows, err := s.repo.FindAllByCompanyWithRoles(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]UserWithRolesResponse, 0, len(rows))
	for _, u := range rows {
		roles := []string{}
		if strings.TrimSpace(u.RolesRaw) != "" {
			roles = strings.Split(u.RolesRaw, ",")
		}
		resp = append(resp, UserWithRolesResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			IsActive:  u.IsActive,
			Roles:     roles,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

// GetInterviewers lists active accounts that can sit on an interview panel.
func (s *service) GetInterviewers(ctx context.Context, companyID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByCompany(ctx, companyID, ListFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		if u.Role == RoleOwner {
			continue
		}
		resp = append(resp, mapToResponse(u))
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidCompanyID
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = RoleRecruiter
	}
	if !IsValidRole(role) || role == RoleOwner {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      strings.TrimSpace(req.Name),
		Role:      role,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hashed),
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		l.Warn("failed to create user", zap.String("email", u.Email), zap.Error(err))
		return UserResponse{}, err
	}

	// The users.role column is the fallback until an rbac role is linked.
	if err := s.repo.ReplaceRole(ctx, companyID, u.ID.String(), role); err != nil && !errors.Is(err, usererrors.ErrRoleNotFound) {
		l.Error("failed to link rbac role", zap.String("user_id", u.ID.String()), zap.Error(err))
		return UserResponse{}, err
	}
	s.reloadPolicy(companyID)

	l.Info("user created", zap.String("user_id", u.ID.String()), zap.String("role", role))
	return mapToResponse(*u), nil
}

func (s *service) AssignRole(ctx context.Context, companyID, userID, roleName string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return usererrors.ErrInvalidUserID
	}
	roleName = strings.ToUpper(strings.TrimSpace(roleName))
	if roleName == "" {
		return usererrors.ErrInvalidRole
	}

	if err := s.repo.ReplaceRole(ctx, companyID, userID, roleName); err != nil {
		return err
	}
	s.reloadPolicy(companyID)
	return nil
}

func (s *service) ToggleStatus(ctx context.Context, companyID, actorID, id string, isActive bool) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}
	if !isActive && actorID == id {
		return usererrors.ErrCannotDeactivateSelf
	}

	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	u.IsActive = isActive
	return s.repo.Update(ctx, u)
}

func (s *service) ChangePassword(ctx context.Context, companyID, userID, currentPassword, newPassword string) error {
	u, err := s.repo.FindByID(ctx, companyID, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}
	return s.setPassword(ctx, u, newPassword)
}

func (s *service) ResetPassword(ctx context.Context, companyID, userID, newPassword string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, companyID, userID)
	if err != nil {
		return err
	}
	return s.setPassword(ctx, u, newPassword)
}

func (s *service) setPassword(ctx context.Context, u *User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

func (s *service) reloadPolicy(companyID string) {
	if s.policy == nil {
		return
	}
	if err := s.policy.LoadCompanyPolicy(companyID); err != nil {
		s.logger.Error("reload company policy failed", zap.String("company_id", companyID), zap.Error(err))
	}
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
