package company

import (
	"context"
	"strings"

	companyerrors "go-ats/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (*CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error)

	UpsertRegistration(ctx context.Context, companyID string, req UpsertCompanyRegistrationRequest) error
	ListRegistrations(ctx context.Context, companyID string) ([]CompanyRegistrationResponse, error)
	DeleteRegistration(ctx context.Context, companyID string, regType RegistrationType) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (*CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		comp.Name = name
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		comp.Email = strings.ToLower(email)
	}
	if req.Address != nil {
		comp.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		comp.City = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		comp.State = strings.TrimSpace(*req.State)
	}
	if req.PinCode != nil {
		pin := strings.TrimSpace(*req.PinCode)
		if pin != "" && !ValidPinCode(pin) {
			return nil, companyerrors.ErrInvalidPinCode
		}
		comp.PinCode = pin
	}
	if req.OfferSignatoryName != nil {
		comp.OfferSignatoryName = strings.TrimSpace(*req.OfferSignatoryName)
	}
	if req.OfferSignatoryTitle != nil {
		comp.OfferSignatoryTitle = strings.TrimSpace(*req.OfferSignatoryTitle)
	}
	if req.IsActive != nil {
		comp.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company failed", zap.String("company_id", id), zap.Error(err))
		return nil, err
	}
	return mapToResponse(comp), nil
}

func (s *service) UpsertRegistration(ctx context.Context, companyID string, req UpsertCompanyRegistrationRequest) error {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return companyerrors.ErrInvalidCompanyID
	}

	regType := RegistrationType(strings.ToUpper(strings.TrimSpace(string(req.Type))))
	if !regType.Valid() {
		return companyerrors.ErrInvalidRegistrationType
	}
	number := strings.ToUpper(strings.TrimSpace(req.Number))
	if !regType.ValidNumber(number) {
		return companyerrors.ErrInvalidRegistrationNumber
	}

	return s.repo.UpsertRegistration(ctx, &CompanyRegistration{
		CompanyID: id,
		Type:      regType,
		Number:    number,
		IssuedAt:  req.IssuedAt,
	})
}

func (s *service) ListRegistrations(ctx context.Context, companyID string) ([]CompanyRegistrationResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	regs, err := s.repo.ListRegistrations(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]CompanyRegistrationResponse, 0, len(regs))
	for _, r := range regs {
		result = append(result, CompanyRegistrationResponse{
			ID:        r.ID.String(),
			Type:      r.Type,
			Number:    r.Number,
			IssuedAt:  r.IssuedAt,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return result, nil
}

func (s *service) DeleteRegistration(ctx context.Context, companyID string, regType RegistrationType) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return companyerrors.ErrInvalidCompanyID
	}
	regType = RegistrationType(strings.ToUpper(string(regType)))
	if !regType.Valid() {
		return companyerrors.ErrInvalidRegistrationType
	}
	return s.repo.DeleteRegistration(ctx, companyID, regType)
}

func mapToResponse(c *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:                  c.ID.String(),
		Name:                c.Name,
		Email:               c.Email,
		Address:             c.Address,
		City:                c.City,
		State:               c.State,
		PinCode:             c.PinCode,
		OfferSignatoryName:  c.OfferSignatoryName,
		OfferSignatoryTitle: c.OfferSignatoryTitle,
		IsActive:            c.IsActive,
	}
}
