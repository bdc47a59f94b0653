package emailtemplate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	emailtemplateerrors "go-ats/internal/emailtemplate/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ActiveTemplateKeyPrefix = "email_templates:active:"
	activeTemplateTTL       = 10 * time.Minute
)

func GetActiveTemplateKey(companyID, templateType string) string {
	return ActiveTemplateKeyPrefix + companyID + ":" + templateType
}

//go:generate mockgen -source=emailtemplate_service.go -destination=mock/emailtemplate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateEmailTemplateRequest) (EmailTemplateResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]EmailTemplateResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmailTemplateResponse, error)
	GetActiveByType(ctx context.Context, companyID, templateType string) (EmailTemplateResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmailTemplateRequest) (EmailTemplateResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	Preview(ctx context.Context, companyID, id string, vars map[string]string) (Rendered, error)
	RenderActive(ctx context.Context, companyID, templateType string, vars map[string]string) (Rendered, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("emailtemplate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("emailtemplate.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateEmailTemplateRequest) (EmailTemplateResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmailTemplateResponse{}, emailtemplateerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return EmailTemplateResponse{}, emailtemplateerrors.ErrInvalidActorID
	}
	if !IsValidType(req.Type) {
		return EmailTemplateResponse{}, emailtemplateerrors.ErrInvalidTemplateType
	}
	body := SanitizeBody(req.BodyHTML)
	if body == "" {
		return EmailTemplateResponse{}, emailtemplateerrors.ErrEmptyBody
	}

	t := &EmailTemplate{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      strings.TrimSpace(req.Name),
		Type:      req.Type,
		Subject:   strings.TrimSpace(req.Subject),
		BodyHTML:  body,
		IsActive:  req.IsActive,
		CreatedBy: actorUUID,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmailTemplateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Warn("create email template persist failed", zap.Error(err))
		return EmailTemplateResponse{}, err
	}
	if t.IsActive {
		if err := qtx.DeactivateType(ctx, companyID, t.Type, t.ID.String()); err != nil {
			return EmailTemplateResponse{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return EmailTemplateResponse{}, err
	}
	s.invalidateActive(ctx, companyID, t.Type)

	if body != strings.TrimSpace(req.BodyHTML) {
		s.logger.Info("email template body sanitised", zap.String("template_id", t.ID.String()))
	}
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]EmailTemplateResponse, error) {
	if filter.Type != "" && !IsValidType(filter.Type) {
		return nil, emailtemplateerrors.ErrInvalidTemplateType
	}
	templates, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]EmailTemplateResponse, len(templates))
	for i, t := range templates {
		res[i] = mapToResponse(t)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmailTemplateResponse, error) {
	t, err := s.find(ctx, s.repo, companyID, id)
	if err != nil {
		return EmailTemplateResponse{}, err
	}
	return mapToResponse(*t), nil
}

// GetActiveByType falls back to the built-in template when the company has
// not activated one of its own.
func (s *service) GetActiveByType(ctx context.Context, companyID, templateType string) (EmailTemplateResponse, error) {
	if !IsValidType(templateType) {
		return EmailTemplateResponse{}, emailtemplateerrors.ErrInvalidTemplateType
	}

	cacheKey := GetActiveTemplateKey(companyID, templateType)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp EmailTemplateResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("active template cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	var resp EmailTemplateResponse
	t, err := s.repo.FindActiveByType(ctx, companyID, templateType)
	switch {
	case err == nil:
		resp = mapToResponse(*t)
	case errors.Is(err, gorm.ErrRecordNotFound):
		def, ok := DefaultTemplate(templateType)
		if !ok {
			return EmailTemplateResponse{}, emailtemplateerrors.ErrNoActiveTemplate
		}
		resp = mapToResponse(def)
		resp.BuiltIn = true
	default:
		return EmailTemplateResponse{}, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, activeTemplateTTL).Err(); err != nil {
				s.logger.Warn("active template cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateEmailTemplateRequest) (EmailTemplateResponse, error) {
	body := SanitizeBody(req.BodyHTML)
	if body == "" {
		return EmailTemplateResponse{}, emailtemplateerrors.ErrEmptyBody
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmailTemplateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	t, err := s.find(ctx, qtx, companyID, id)
	if err != nil {
		return EmailTemplateResponse{}, err
	}

	t.Name = strings.TrimSpace(req.Name)
	t.Subject = strings.TrimSpace(req.Subject)
	t.BodyHTML = body
	t.IsActive = req.IsActive

	if err := qtx.Update(ctx, t); err != nil {
		return EmailTemplateResponse{}, err
	}
	if t.IsActive {
		if err := qtx.DeactivateType(ctx, companyID, t.Type, t.ID.String()); err != nil {
			return EmailTemplateResponse{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return EmailTemplateResponse{}, err
	}
	s.invalidateActive(ctx, companyID, t.Type)

	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	t, err := s.find(ctx, s.repo, companyID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		return err
	}
	s.invalidateActive(ctx, companyID, t.Type)
	return nil
}

func (s *service) Preview(ctx context.Context, companyID, id string, vars map[string]string) (Rendered, error) {
	t, err := s.find(ctx, s.repo, companyID, id)
	if err != nil {
		return Rendered{}, err
	}
	return Render(t.Subject, t.BodyHTML, vars), nil
}

func (s *service) RenderActive(ctx context.Context, companyID, templateType string, vars map[string]string) (Rendered, error) {
	t, err := s.GetActiveByType(ctx, companyID, templateType)
	if err != nil {
		return Rendered{}, err
	}
	out := Render(t.Subject, t.BodyHTML, vars)
	if len(out.MissingVariables) > 0 {
		s.logger.Warn("email template rendered with missing variables",
			zap.String("company_id", companyID),
			zap.String("type", templateType),
			zap.Strings("missing", out.MissingVariables),
		)
	}
	return out, nil
}

func (s *service) find(ctx context.Context, repo Repository, companyID, id string) (*EmailTemplate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, emailtemplateerrors.ErrInvalidTemplateID
	}
	return repo.FindByIDAndCompany(ctx, companyID, id)
}

func (s *service) invalidateActive(ctx context.Context, companyID, templateType string) {
	if s.rdb == nil {
		return
	}
	key := GetActiveTemplateKey(companyID, templateType)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate active template cache", zap.String("key", key), zap.Error(err))
	}
}

func mapToResponse(t EmailTemplate) EmailTemplateResponse {
	vars := Placeholders(t.Subject + "\n" + t.BodyHTML)
	if vars == nil {
		vars = []string{}
	}
	resp := EmailTemplateResponse{
		Name:      t.Name,
		Type:      t.Type,
		Subject:   t.Subject,
		BodyHTML:  t.BodyHTML,
		Variables: vars,
		IsActive:  t.IsActive,
	}
	if t.ID != uuid.Nil {
		resp.ID = t.ID.String()
		resp.CompanyID = t.CompanyID.String()
		resp.CreatedBy = t.CreatedBy.String()
		resp.CreatedAt = t.CreatedAt.Format(time.RFC3339)
		resp.UpdatedAt = t.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
