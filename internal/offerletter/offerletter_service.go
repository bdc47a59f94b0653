package offerletter

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-ats/internal/candidate"
	candidateerrors "go-ats/internal/candidate/errors"
	"go-ats/internal/events"
	"go-ats/internal/messaging/kafka"
	offerlettererrors "go-ats/internal/offerletter/errors"
	"go-ats/internal/salary"
	"go-ats/internal/shared/contextutil"
	"go-ats/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	offerNumberPrefix = "OFR"
	joiningDateLayout = "2006-01-02"
)

//go:generate mockgen -source=offerletter_service.go -destination=mock/offerletter_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, annualCTC float64) (salary.BreakdownResponse, error)
	Create(ctx context.Context, companyID, actorID string, req CreateOfferLetterRequest) (OfferLetterResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]OfferLetterResponse, error)
	GetByID(ctx context.Context, companyID, id string) (OfferLetterResponse, error)
	GetBreakdown(ctx context.Context, companyID, id string) (OfferBreakdownResponse, error)
	Regenerate(ctx context.Context, companyID, id string, req RegenerateOfferLetterRequest) (OfferLetterResponse, error)
	Send(ctx context.Context, companyID, actorID, id string) (OfferLetterResponse, error)
	Accept(ctx context.Context, companyID, id string) (OfferLetterResponse, error)
	Decline(ctx context.Context, companyID, id, reason string) (OfferLetterResponse, error)
	Withdraw(ctx context.Context, companyID, id string) (OfferLetterResponse, error)
	RenderPDF(ctx context.Context, companyID, id string) (OfferDocument, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	candidates candidate.Repository
	counter    counter.Repository
	outbox     kafka.OutboxRepository
	calculator salary.Service
	rdb        *redis.Client
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	candidates candidate.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	calculator salary.Service,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("offerletter.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("offerletter.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		candidates: candidates,
		counter:    counterRepo,
		outbox:     outboxRepo,
		calculator: calculator,
		rdb:        rdb,
		logger:     l,
		now:        time.Now,
	}
}

func (s *service) Preview(_ context.Context, annualCTC float64) (salary.BreakdownResponse, error) {
	return s.calculator.Preview(annualCTC)
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateOfferLetterRequest) (OfferLetterResponse, error) {
	s.logger.Debug("create offer letter requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("candidate_id", req.CandidateID),
		zap.Float64("annual_ctc", req.AnnualCTC),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return OfferLetterResponse{}, offerlettererrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return OfferLetterResponse{}, offerlettererrors.ErrInvalidActorID
	}
	candidateUUID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return OfferLetterResponse{}, offerlettererrors.ErrInvalidCandidateID
	}
	joiningDate, err := s.parseJoiningDate(req.JoiningDate)
	if err != nil {
		return OfferLetterResponse{}, err
	}

	// The breakdown is computed once here and frozen into columns.
	preview, err := s.calculator.Preview(req.AnnualCTC)
	if err != nil {
		return OfferLetterResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create offer letter begin tx failed", zap.Error(err))
		return OfferLetterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cands := s.candidates.WithTx(tx)

	cand, err := cands.FindByIDAndCompany(ctx, companyID, req.CandidateID)
	if err != nil {
		return OfferLetterResponse{}, mapCandidateError(err)
	}

	promote := false
	switch cand.Stage {
	case candidate.StageInterview:
		if err := candidate.Transition(cand, candidate.StageOffered); err != nil {
			return OfferLetterResponse{}, err
		}
		promote = true
	case candidate.StageOffered:
		if !cand.Wizard().Complete() {
			return OfferLetterResponse{}, candidateerrors.ErrProfileIncomplete
		}
	default:
		return OfferLetterResponse{}, offerlettererrors.ErrCandidateNotReady
	}

	active, err := qtx.HasActiveOffer(ctx, companyID, req.CandidateID)
	if err != nil {
		s.logger.Error("create offer letter active check failed", zap.Error(err))
		return OfferLetterResponse{}, err
	}
	if active {
		return OfferLetterResponse{}, offerlettererrors.ErrActiveOfferExists
	}

	number, err := counter.NextNumber(ctx, s.counter.WithTx(tx), companyID, counter.TypeOfferNumber, offerNumberPrefix)
	if err != nil {
		s.logger.Error("create offer letter generate number failed", zap.Error(err))
		return OfferLetterResponse{}, err
	}

	offer := &OfferLetter{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		OfferNumber: number,
		CandidateID: candidateUUID,
		Designation: strings.TrimSpace(req.Designation),
		Department:  strings.TrimSpace(req.Department),
		JoiningDate: joiningDate,
		AnnualCTC:   preview.Breakdown.AnnualCTC,
		Components:  storeBreakdown(preview.Breakdown),
		Status:      StatusDraft,
		CreatedBy:   actorUUID,
	}

	if err := qtx.Create(ctx, offer); err != nil {
		s.logger.Error("create offer letter persist failed", zap.Error(err))
		return OfferLetterResponse{}, err
	}
	if promote {
		if err := cands.Update(ctx, cand); err != nil {
			s.logger.Error("create offer letter candidate stage update failed", zap.Error(err))
			return OfferLetterResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create offer letter commit failed", zap.Error(err))
		return OfferLetterResponse{}, err
	}
	if promote {
		s.invalidateCandidateOptions(ctx, companyID)
	}

	s.logger.Info("create offer letter success",
		zap.String("offer_letter_id", offer.ID.String()),
		zap.String("offer_number", offer.OfferNumber),
		zap.Int64("annual_ctc", offer.AnnualCTC),
		zap.Strings("warnings", offer.Components.Warnings),
	)
	return mapToResponse(*offer), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]OfferLetterResponse, error) {
	offers, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(offers), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (OfferLetterResponse, error) {
	offer, err := s.find(ctx, s.repo, companyID, id)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	return mapToResponse(*offer), nil
}

func (s *service) GetBreakdown(ctx context.Context, companyID, id string) (OfferBreakdownResponse, error) {
	offer, err := s.find(ctx, s.repo, companyID, id)
	if err != nil {
		return OfferBreakdownResponse{}, err
	}

	b := offer.Breakdown()
	tax, err := salary.EstimateIncomeTax(b.TotalA.Annual)
	if err != nil {
		return OfferBreakdownResponse{}, err
	}

	return OfferBreakdownResponse{
		OfferLetterID:     offer.ID.String(),
		OfferNumber:       offer.OfferNumber,
		BreakdownResponse: salary.BreakdownResponse{Breakdown: b, TaxEstimate: tax},
	}, nil
}

func (s *service) Regenerate(ctx context.Context, companyID, id string, req RegenerateOfferLetterRequest) (OfferLetterResponse, error) {
	preview, err := s.calculator.Preview(req.AnnualCTC)
	if err != nil {
		return OfferLetterResponse{}, err
	}

	var joiningDate *time.Time
	if strings.TrimSpace(req.JoiningDate) != "" {
		d, err := s.parseJoiningDate(req.JoiningDate)
		if err != nil {
			return OfferLetterResponse{}, err
		}
		joiningDate = &d
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	offer, err := s.find(ctx, qtx, companyID, id)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	if offer.Status != StatusDraft {
		return OfferLetterResponse{}, offerlettererrors.ErrOnlyDraftEditable
	}

	offer.AnnualCTC = preview.Breakdown.AnnualCTC
	offer.Components = storeBreakdown(preview.Breakdown)
	if v := strings.TrimSpace(req.Designation); v != "" {
		offer.Designation = v
	}
	if v := strings.TrimSpace(req.Department); v != "" {
		offer.Department = v
	}
	if joiningDate != nil {
		offer.JoiningDate = *joiningDate
	}

	if err := qtx.Update(ctx, offer); err != nil {
		s.logger.Error("regenerate offer letter persist failed", zap.Error(err))
		return OfferLetterResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return OfferLetterResponse{}, err
	}

	s.logger.Info("regenerate offer letter success",
		zap.String("offer_letter_id", offer.ID.String()),
		zap.Int64("annual_ctc", offer.AnnualCTC),
	)
	return mapToResponse(*offer), nil
}

func (s *service) Send(ctx context.Context, companyID, actorID, id string) (OfferLetterResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return OfferLetterResponse{}, offerlettererrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	offer, err := s.find(ctx, qtx, companyID, id)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	if !CanTransition(offer.Status, StatusSent) {
		return OfferLetterResponse{}, offerlettererrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	offer.Status = StatusSent
	offer.SentAt = &now
	offer.SentBy = &actorUUID

	if err := qtx.Update(ctx, offer); err != nil {
		s.logger.Error("send offer letter persist failed", zap.Error(err))
		return OfferLetterResponse{}, err
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.OfferLetterSentEvent{
		EventType:     events.OfferLetterSentType,
		RequestID:     rid,
		OfferLetterID: offer.ID.String(),
		CandidateID:   offer.CandidateID.String(),
		CompanyID:     offer.CompanyID.String(),
		SentBy:        actorID,
		OccurredAt:    now,
	}
	row, err := kafka.NewOutboxEvent(rid, event)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("send offer letter outbox persist failed",
			zap.String("offer_letter_id", offer.ID.String()),
			zap.Error(err),
		)
		return OfferLetterResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("send offer letter commit failed", zap.Error(err))
		return OfferLetterResponse{}, err
	}

	s.logger.Info("send offer letter success",
		zap.String("offer_letter_id", offer.ID.String()),
		zap.String("request_id", rid),
	)
	return mapToResponse(*offer), nil
}

func (s *service) Accept(ctx context.Context, companyID, id string) (OfferLetterResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	offer, err := s.find(ctx, qtx, companyID, id)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	if !CanTransition(offer.Status, StatusAccepted) {
		return OfferLetterResponse{}, offerlettererrors.ErrInvalidStatusTransition
	}

	cands := s.candidates.WithTx(tx)
	cand, err := cands.FindByIDAndCompany(ctx, companyID, offer.CandidateID.String())
	if err != nil {
		return OfferLetterResponse{}, mapCandidateError(err)
	}
	if err := candidate.Transition(cand, candidate.StageHired); err != nil {
		return OfferLetterResponse{}, err
	}

	now := s.now().UTC()
	offer.Status = StatusAccepted
	offer.RespondedAt = &now

	if err := qtx.Update(ctx, offer); err != nil {
		return OfferLetterResponse{}, err
	}
	if err := cands.Update(ctx, cand); err != nil {
		s.logger.Error("accept offer letter candidate stage update failed", zap.Error(err))
		return OfferLetterResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return OfferLetterResponse{}, err
	}
	s.invalidateCandidateOptions(ctx, companyID)

	s.logger.Info("accept offer letter success",
		zap.String("offer_letter_id", offer.ID.String()),
		zap.String("candidate_id", offer.CandidateID.String()),
	)
	return mapToResponse(*offer), nil
}

func (s *service) Decline(ctx context.Context, companyID, id, reason string) (OfferLetterResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return OfferLetterResponse{}, offerlettererrors.ErrDeclineReasonRequired
	}
	return s.transitionStatus(ctx, companyID, id, StatusDeclined, func(o *OfferLetter) {
		now := s.now().UTC()
		o.RespondedAt = &now
		o.DeclineReason = reason
	})
}

func (s *service) Withdraw(ctx context.Context, companyID, id string) (OfferLetterResponse, error) {
	return s.transitionStatus(ctx, companyID, id, StatusWithdrawn, nil)
}

func (s *service) transitionStatus(
	ctx context.Context,
	companyID, id, next string,
	apply func(o *OfferLetter),
) (OfferLetterResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	offer, err := s.find(ctx, qtx, companyID, id)
	if err != nil {
		return OfferLetterResponse{}, err
	}
	if !CanTransition(offer.Status, next) {
		s.logger.Warn("offer letter status transition rejected",
			zap.String("offer_letter_id", id),
			zap.String("from", offer.Status),
			zap.String("to", next),
		)
		return OfferLetterResponse{}, offerlettererrors.ErrInvalidStatusTransition
	}

	offer.Status = next
	if apply != nil {
		apply(offer)
	}

	if err := qtx.Update(ctx, offer); err != nil {
		return OfferLetterResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return OfferLetterResponse{}, err
	}

	s.logger.Info("offer letter status changed",
		zap.String("offer_letter_id", id),
		zap.String("status", next),
	)
	return mapToResponse(*offer), nil
}

func (s *service) RenderPDF(ctx context.Context, companyID, id string) (OfferDocument, error) {
	offer, err := s.find(ctx, s.repo, companyID, id)
	if err != nil {
		return OfferDocument{}, err
	}
	cand, err := s.candidates.FindByIDAndCompany(ctx, companyID, offer.CandidateID.String())
	if err != nil {
		return OfferDocument{}, mapCandidateError(err)
	}
	letterhead, err := s.repo.CompanyLetterhead(ctx, companyID)
	if err != nil {
		return OfferDocument{}, err
	}

	issuedAt := offer.CreatedAt
	if offer.SentAt != nil {
		issuedAt = *offer.SentAt
	}

	content, err := renderOfferPDF(offerPDFData{
		Company:       letterhead,
		CandidateName: cand.FullName,
		CandidatePAN:  cand.IdentityDocuments.PAN,
		OfferNumber:   offer.OfferNumber,
		Designation:   offer.Designation,
		Department:    offer.Department,
		JoiningDate:   offer.JoiningDate,
		IssuedAt:      issuedAt,
		Breakdown:     offer.Breakdown(),
	})
	if err != nil {
		s.logger.Error("render offer letter pdf failed",
			zap.String("offer_letter_id", id),
			zap.Error(err),
		)
		return OfferDocument{}, offerlettererrors.ErrPDFRenderFailed
	}

	return OfferDocument{
		FileName:       offerFileName(offer.OfferNumber),
		Content:        content,
		CandidateName:  cand.FullName,
		CandidateEmail: cand.Email,
		CompanyName:    letterhead.Name,
		Offer:          mapToResponse(*offer),
	}, nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	offer, err := s.find(ctx, qtx, companyID, id)
	if err != nil {
		return err
	}
	if offer.Status != StatusDraft {
		return offerlettererrors.ErrOnlyDraftDeletable
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) find(ctx context.Context, repo Repository, companyID, id string) (*OfferLetter, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, offerlettererrors.ErrInvalidOfferID
	}
	return repo.FindByIDAndCompany(ctx, companyID, id)
}

func (s *service) parseJoiningDate(v string) (time.Time, error) {
	d, err := time.Parse(joiningDateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, offerlettererrors.ErrInvalidJoiningDate
	}
	today, _ := time.Parse(joiningDateLayout, s.now().Format(joiningDateLayout))
	if d.Before(today) {
		return time.Time{}, offerlettererrors.ErrJoiningDateInPast
	}
	return d, nil
}

func (s *service) invalidateCandidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	key := candidate.GetCandidateOptionsKey(companyID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate candidate options cache",
			zap.Error(err),
			zap.String("key", key),
		)
	}
}

func mapCandidateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return offerlettererrors.ErrCandidateNotFound
	}
	return err
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapToResponse(o OfferLetter) OfferLetterResponse {
	resp := OfferLetterResponse{
		ID:                 o.ID.String(),
		CompanyID:          o.CompanyID.String(),
		OfferNumber:        o.OfferNumber,
		CandidateID:        o.CandidateID.String(),
		Designation:        o.Designation,
		Department:         o.Department,
		JoiningDate:        o.JoiningDate.Format(joiningDateLayout),
		AnnualCTC:          o.AnnualCTC,
		NetTakeHomeMonthly: o.Components.NetTakeHomeMonthly,
		Status:             o.Status,
		DeclineReason:      o.DeclineReason,
		CreatedBy:          o.CreatedBy.String(),
		SentAt:             formatTime(o.SentAt),
		RespondedAt:        formatTime(o.RespondedAt),
		CreatedAt:          o.CreatedAt.Format(time.RFC3339),
	}
	if o.SentBy != nil {
		v := o.SentBy.String()
		resp.SentBy = &v
	}
	return resp
}

func mapToListResponse(list []OfferLetter) []OfferLetterResponse {
	res := make([]OfferLetterResponse, len(list))
	for i, o := range list {
		res[i] = mapToResponse(o)
	}
	return res
}
