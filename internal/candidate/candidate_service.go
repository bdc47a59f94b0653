package candidate

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	candidateerrors "go-ats/internal/candidate/errors"
	"go-ats/internal/events"
	"go-ats/internal/messaging/kafka"
	"go-ats/internal/shared/apperror"
	"go-ats/internal/shared/contextutil"
	"go-ats/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CandidateOptionsKeyPrefix = "candidates:options:"
	candidateOptionsTTL       = 10 * time.Minute
	candidateNumberPrefix     = "CAN"
)

func GetCandidateOptionsKey(companyID string) string {
	return CandidateOptionsKeyPrefix + companyID
}

//go:generate mockgen -source=candidate_service.go -destination=mock/candidate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateCandidateRequest) (CandidateResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]CandidateResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]CandidateOption, error)
	GetByID(ctx context.Context, companyID, id string) (CandidateResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateCandidateRequest) (CandidateResponse, error)
	SaveSection(ctx context.Context, companyID, id, section string, req SaveSectionRequest) (CandidateResponse, error)
	WizardBack(ctx context.Context, companyID, id string) (CandidateResponse, error)
	MoveStage(ctx context.Context, companyID, id string, req MoveStageRequest) (CandidateResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("candidate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return candidateerrors.ErrInvalidCandidateID
	}
	return nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateCandidateRequest) (CandidateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create candidate requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("email", req.Email),
	)

	cand := &Candidate{
		ID:        uuid.New(),
		CompanyID: uuid.MustParse(companyID),
		Stage:     StageApplied,
	}
	applyPersonal(cand, req.PersonalDetails)

	// creation is the personal section of the form
	w := NewWizard()
	if err := w.Advance(cand); err != nil {
		return CandidateResponse{}, err
	}
	cand.applyWizard(w)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create candidate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CandidateResponse{}, err
	}
	defer tx.Rollback()

	number, err := counter.NextNumber(ctx, s.counter.WithTx(tx), companyID, counter.TypeCandidateNumber, candidateNumberPrefix)
	if err != nil {
		s.logger.Error("create candidate generate number failed", zap.Error(err))
		return CandidateResponse{}, err
	}
	cand.CandidateNumber = number

	if err := s.repo.WithTx(tx).Create(ctx, cand); err != nil {
		s.logger.Warn("create candidate persist failed", zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create candidate commit failed", zap.String("request_id", rid), zap.Error(err))
		return CandidateResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	s.logger.Info("create candidate success",
		zap.String("request_id", rid),
		zap.String("candidate_id", cand.ID.String()),
		zap.String("candidate_number", number),
	)
	return mapToResponse(*cand), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]CandidateResponse, error) {
	if filter.Stage != "" {
		if _, err := ParseStage(filter.Stage); err != nil {
			return nil, err
		}
	}
	list, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("get all candidates failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(list), nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]CandidateOption, error) {
	cacheKey := GetCandidateOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []CandidateOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// concurrent misses for the same company share one query
	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		list, err := s.repo.FindOptionsByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]CandidateOption, len(list))
		for i, c := range list {
			resp[i] = CandidateOption{
				ID:              c.ID.String(),
				CandidateNumber: c.CandidateNumber,
				FullName:        c.FullName,
				Email:           c.Email,
				Stage:           string(c.Stage),
			}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, candidateOptionsTTL).Err(); err != nil {
					s.logger.Warn("cache candidate options failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]CandidateOption), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (CandidateResponse, error) {
	if err := parseID(id); err != nil {
		return CandidateResponse{}, err
	}
	cand, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cand), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateCandidateRequest) (CandidateResponse, error) {
	if err := parseID(id); err != nil {
		return CandidateResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update candidate begin tx failed", zap.Error(err))
		return CandidateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cand, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}
	if cand.Stage.IsTerminal() {
		return CandidateResponse{}, candidateerrors.ErrCandidateClosed
	}

	applyPersonal(cand, req.PersonalDetails)
	if err := sectionValidators[SectionPersonal](cand); err != nil {
		return CandidateResponse{}, err
	}
	w := cand.Wizard()
	w.ReopenReview()
	cand.applyWizard(w)

	if err := qtx.Update(ctx, cand); err != nil {
		s.logger.Warn("update candidate persist failed", zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update candidate commit failed", zap.Error(err))
		return CandidateResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	s.logger.Info("update candidate success", zap.String("candidate_id", id))
	return mapToResponse(*cand), nil
}

func (s *service) SaveSection(
	ctx context.Context,
	companyID, id, section string,
	req SaveSectionRequest,
) (CandidateResponse, error) {
	if err := parseID(id); err != nil {
		return CandidateResponse{}, err
	}
	idx, err := SectionIndex(section)
	if err != nil {
		return CandidateResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CandidateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cand, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}
	if cand.Stage.IsTerminal() {
		return CandidateResponse{}, candidateerrors.ErrCandidateClosed
	}

	w := cand.Wizard()
	if err := w.GoTo(idx); err != nil {
		return CandidateResponse{}, err
	}

	switch Sections[idx] {
	case SectionPersonal:
		if req.Personal == nil {
			return CandidateResponse{}, apperror.RequiredField("Personal")
		}
		applyPersonal(cand, *req.Personal)
	case SectionEducation:
		cand.Education = req.Education
	case SectionEmployment:
		cand.Employment = req.Employment
	case SectionDocuments:
		if req.Documents == nil {
			return CandidateResponse{}, apperror.RequiredField("Documents")
		}
		docs := *req.Documents
		docs.PAN = strings.ToUpper(strings.TrimSpace(docs.PAN))
		docs.Passport = strings.ToUpper(strings.TrimSpace(docs.Passport))
		docs.Aadhaar = strings.ReplaceAll(docs.Aadhaar, " ", "")
		cand.IdentityDocuments = docs
	}

	if err := w.Advance(cand); err != nil {
		return CandidateResponse{}, err
	}
	if Sections[idx] != SectionReview {
		w.ReopenReview()
	}
	cand.applyWizard(w)

	if err := qtx.Update(ctx, cand); err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return CandidateResponse{}, err
	}

	if Sections[idx] == SectionPersonal {
		s.invalidateOptions(ctx, companyID)
	}
	s.logger.Info("candidate section saved",
		zap.String("candidate_id", id),
		zap.String("section", section),
		zap.Strings("completed", cand.CompletedSections),
	)
	return mapToResponse(*cand), nil
}

func (s *service) WizardBack(ctx context.Context, companyID, id string) (CandidateResponse, error) {
	if err := parseID(id); err != nil {
		return CandidateResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CandidateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cand, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}
	if cand.Stage.IsTerminal() {
		return CandidateResponse{}, candidateerrors.ErrCandidateClosed
	}

	w := cand.Wizard()
	if err := w.Back(); err != nil {
		return CandidateResponse{}, err
	}
	cand.applyWizard(w)

	if err := qtx.Update(ctx, cand); err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return CandidateResponse{}, err
	}
	return mapToResponse(*cand), nil
}

func (s *service) MoveStage(ctx context.Context, companyID, id string, req MoveStageRequest) (CandidateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if err := parseID(id); err != nil {
		return CandidateResponse{}, err
	}
	next, err := ParseStage(req.Stage)
	if err != nil {
		return CandidateResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("move stage begin tx failed", zap.Error(err))
		return CandidateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cand, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}

	prev := cand.Stage
	if err := Transition(cand, next); err != nil {
		s.logger.Warn("move stage rejected",
			zap.String("candidate_id", id),
			zap.String("from", string(prev)),
			zap.String("to", string(next)),
			zap.Error(err),
		)
		return CandidateResponse{}, err
	}
	if next == StageRejected {
		cand.RejectionReason = strings.TrimSpace(req.Reason)
	}

	if err := qtx.Update(ctx, cand); err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}

	if next == StageRejected && s.outbox != nil {
		event := events.CandidateRejectedEvent{
			EventType:   events.CandidateRejectedType,
			RequestID:   rid,
			CandidateID: cand.ID.String(),
			CompanyID:   companyID,
			Reason:      cand.RejectionReason,
			OccurredAt:  time.Now().UTC(),
		}
		row, err := kafka.NewOutboxEvent(rid, event)
		if err != nil {
			return CandidateResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
			s.logger.Error("candidate rejected outbox persist failed", zap.String("candidate_id", id), zap.Error(err))
			return CandidateResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("move stage commit failed", zap.Error(err))
		return CandidateResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	s.logger.Info("candidate stage moved",
		zap.String("request_id", rid),
		zap.String("candidate_id", id),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
	)
	return mapToResponse(*cand), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if err := parseID(id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete candidate begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		s.logger.Warn("delete candidate failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("delete candidate commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx, companyID)
	s.logger.Info("delete candidate success", zap.String("candidate_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetCandidateOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate candidate options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func applyPersonal(c *Candidate, p PersonalDetails) {
	c.FullName = strings.TrimSpace(p.FullName)
	c.Email = strings.ToLower(strings.TrimSpace(p.Email))
	c.Phone = strings.TrimSpace(p.Phone)
	c.PositionApplied = strings.TrimSpace(p.PositionApplied)
	c.Source = strings.TrimSpace(p.Source)
	c.CurrentCTC = p.CurrentCTC
	c.ExpectedCTC = p.ExpectedCTC
	c.NoticePeriodDays = p.NoticePeriodDays
	c.ResumeURL = strings.TrimSpace(p.ResumeURL)
}

func mapToResponse(c Candidate) CandidateResponse {
	w := c.Wizard()
	education := c.Education
	if education == nil {
		education = []EducationEntry{}
	}
	employment := c.Employment
	if employment == nil {
		employment = []EmploymentEntry{}
	}
	return CandidateResponse{
		ID:                c.ID.String(),
		CompanyID:         c.CompanyID.String(),
		CandidateNumber:   c.CandidateNumber,
		FullName:          c.FullName,
		Email:             c.Email,
		Phone:             c.Phone,
		PositionApplied:   c.PositionApplied,
		Source:            c.Source,
		Stage:             string(c.Stage),
		RejectionReason:   c.RejectionReason,
		CurrentCTC:        c.CurrentCTC,
		ExpectedCTC:       c.ExpectedCTC,
		NoticePeriodDays:  c.NoticePeriodDays,
		ResumeURL:         c.ResumeURL,
		Education:         education,
		Employment:        employment,
		IdentityDocuments: c.IdentityDocuments,
		Wizard: WizardResponse{
			CurrentSection:    string(w.Current()),
			CurrentIndex:      w.CurrentIndex(),
			CompletedSections: w.Completed(),
			Complete:          w.Complete(),
		},
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(list []Candidate) []CandidateResponse {
	res := make([]CandidateResponse, len(list))
	for i, c := range list {
		res[i] = mapToResponse(c)
	}
	return res
}
