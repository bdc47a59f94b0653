package interview

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-ats/internal/candidate"
	"go-ats/internal/events"
	interviewerrors "go-ats/internal/interview/errors"
	"go-ats/internal/messaging/kafka"
	"go-ats/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// promotableCandidateStages move to INTERVIEW when their first interview is booked.
var promotableCandidateStages = map[string]bool{
	"APPLIED":   true,
	"SCREENING": true,
}

var closedCandidateStages = map[string]bool{
	"HIRED":     true,
	"REJECTED":  true,
	"WITHDRAWN": true,
}

//go:generate mockgen -source=interview_service.go -destination=mock/interview_service_mock.go -package=mock
type Service interface {
	Schedule(ctx context.Context, companyID, actorID string, req ScheduleInterviewRequest) (InterviewResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]InterviewResponse, error)
	GetByID(ctx context.Context, companyID, id string) (InterviewResponse, error)
	Reschedule(ctx context.Context, companyID, id string, req RescheduleInterviewRequest) (InterviewResponse, error)
	Complete(ctx context.Context, companyID, id string, req CompleteInterviewRequest) (InterviewResponse, error)
	Cancel(ctx context.Context, companyID, id, reason string) (InterviewResponse, error)
	MarkNoShow(ctx context.Context, companyID, id string) (InterviewResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("interview.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("interview.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, rdb: rdb, logger: l}
}

func (s *service) Schedule(ctx context.Context, companyID, actorID string, req ScheduleInterviewRequest) (InterviewResponse, error) {
	s.logger.Debug("schedule interview requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("candidate_id", req.CandidateID),
		zap.String("interviewer_id", req.InterviewerID),
		zap.String("scheduled_at", req.ScheduledAt),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidActorID
	}
	scheduledAt, err := parseSchedule(req.ScheduledAt)
	if err != nil {
		return InterviewResponse{}, err
	}
	if err := validateVenue(req.Mode, req.MeetingLink, req.Location); err != nil {
		return InterviewResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("schedule interview begin tx failed", zap.Error(err))
		return InterviewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	stage, err := qtx.CandidateStage(ctx, companyID, req.CandidateID)
	if err != nil {
		return InterviewResponse{}, err
	}
	if stage == "" {
		return InterviewResponse{}, interviewerrors.ErrCandidateNotInCompany
	}
	if closedCandidateStages[stage] {
		return InterviewResponse{}, interviewerrors.ErrCandidateClosed
	}

	belongs, err := qtx.InterviewerBelongsToCompany(ctx, companyID, req.InterviewerID)
	if err != nil {
		s.logger.Error("schedule interview interviewer check failed", zap.Error(err))
		return InterviewResponse{}, err
	}
	if !belongs {
		return InterviewResponse{}, interviewerrors.ErrInterviewerNotInCompany
	}

	busy, err := qtx.HasOverlappingSlot(ctx, companyID, req.InterviewerID, scheduledAt, req.DurationMinutes, nil)
	if err != nil {
		s.logger.Error("schedule interview overlap check failed", zap.Error(err))
		return InterviewResponse{}, err
	}
	if busy {
		s.logger.Warn("schedule interview overlap detected",
			zap.String("interviewer_id", req.InterviewerID),
			zap.Time("scheduled_at", scheduledAt),
		)
		return InterviewResponse{}, interviewerrors.ErrInterviewerBusy
	}

	round := req.Round
	if round == 0 {
		if round, err = qtx.NextRound(ctx, companyID, req.CandidateID); err != nil {
			return InterviewResponse{}, err
		}
	}

	i := &Interview{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CandidateID:     uuid.MustParse(req.CandidateID),
		InterviewerID:   uuid.MustParse(req.InterviewerID),
		Round:           round,
		Mode:            req.Mode,
		ScheduledAt:     scheduledAt,
		DurationMinutes: req.DurationMinutes,
		MeetingLink:     strings.TrimSpace(req.MeetingLink),
		Location:        strings.TrimSpace(req.Location),
		Notes:           req.Notes,
		Status:          StatusScheduled,
		CreatedBy:       actorUUID,
	}

	if err := qtx.Create(ctx, i); err != nil {
		s.logger.Error("schedule interview persist failed", zap.Error(err))
		return InterviewResponse{}, err
	}
	if err := qtx.PromoteCandidate(ctx, companyID, req.CandidateID); err != nil {
		s.logger.Error("schedule interview promote candidate failed", zap.Error(err))
		return InterviewResponse{}, err
	}
	if err := s.writeScheduledEvent(ctx, tx, i, false); err != nil {
		return InterviewResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("schedule interview commit failed", zap.Error(err))
		return InterviewResponse{}, err
	}
	if promotableCandidateStages[stage] {
		s.invalidateCandidateOptions(ctx, companyID)
	}
	s.logger.Info("schedule interview success",
		zap.String("interview_id", i.ID.String()),
		zap.String("candidate_id", req.CandidateID),
		zap.Int("round", round),
	)
	return mapToResponse(*i), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]InterviewResponse, error) {
	interviews, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(interviews), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (InterviewResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidInterviewID
	}
	i, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return InterviewResponse{}, mapNotFound(err)
	}
	return mapToResponse(*i), nil
}

func (s *service) Reschedule(ctx context.Context, companyID, id string, req RescheduleInterviewRequest) (InterviewResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidInterviewID
	}
	scheduledAt, err := parseSchedule(req.ScheduledAt)
	if err != nil {
		return InterviewResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("reschedule interview begin tx failed", zap.Error(err))
		return InterviewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	i, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return InterviewResponse{}, mapNotFound(err)
	}
	if i.Status != StatusScheduled {
		return InterviewResponse{}, interviewerrors.ErrInvalidStatusTransition
	}

	if req.InterviewerID != "" && req.InterviewerID != i.InterviewerID.String() {
		belongs, err := qtx.InterviewerBelongsToCompany(ctx, companyID, req.InterviewerID)
		if err != nil {
			return InterviewResponse{}, err
		}
		if !belongs {
			return InterviewResponse{}, interviewerrors.ErrInterviewerNotInCompany
		}
		i.InterviewerID = uuid.MustParse(req.InterviewerID)
	}
	if req.DurationMinutes > 0 {
		i.DurationMinutes = req.DurationMinutes
	}

	busy, err := qtx.HasOverlappingSlot(ctx, companyID, i.InterviewerID.String(), scheduledAt, i.DurationMinutes, &id)
	if err != nil {
		return InterviewResponse{}, err
	}
	if busy {
		return InterviewResponse{}, interviewerrors.ErrInterviewerBusy
	}
	i.ScheduledAt = scheduledAt

	if err := qtx.Update(ctx, i); err != nil {
		s.logger.Error("reschedule interview persist failed", zap.String("interview_id", id), zap.Error(err))
		return InterviewResponse{}, err
	}
	if err := s.writeScheduledEvent(ctx, tx, i, true); err != nil {
		return InterviewResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return InterviewResponse{}, err
	}
	s.logger.Info("reschedule interview success",
		zap.String("interview_id", id),
		zap.Time("scheduled_at", scheduledAt),
	)
	return mapToResponse(*i), nil
}

func (s *service) Complete(ctx context.Context, companyID, id string, req CompleteInterviewRequest) (InterviewResponse, error) {
	return s.transitionStatus(ctx, companyID, id, StatusCompleted, func(i *Interview) error {
		now := time.Now().UTC()
		if i.ScheduledAt.After(now) {
			return interviewerrors.ErrInterviewNotStarted
		}
		if strings.TrimSpace(req.Notes) != "" {
			i.Notes = req.Notes
		}
		i.CompletedAt = &now
		return nil
	})
}

func (s *service) Cancel(ctx context.Context, companyID, id, reason string) (InterviewResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return InterviewResponse{}, interviewerrors.ErrCancelReasonRequired
	}
	return s.transitionStatus(ctx, companyID, id, StatusCancelled, func(i *Interview) error {
		i.CancelReason = &reason
		return nil
	})
}

func (s *service) MarkNoShow(ctx context.Context, companyID, id string) (InterviewResponse, error) {
	return s.transitionStatus(ctx, companyID, id, StatusNoShow, func(i *Interview) error {
		if i.ScheduledAt.After(time.Now().UTC()) {
			return interviewerrors.ErrInterviewNotStarted
		}
		return nil
	})
}

// transitionStatus moves a SCHEDULED interview to a final status; apply may
// veto the move or fill status specific fields.
func (s *service) transitionStatus(
	ctx context.Context,
	companyID, id, target string,
	apply func(i *Interview) error,
) (InterviewResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidInterviewID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition interview begin tx failed", zap.Error(err))
		return InterviewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	i, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return InterviewResponse{}, mapNotFound(err)
	}
	if i.Status != StatusScheduled {
		s.logger.Warn("transition interview invalid",
			zap.String("interview_id", id),
			zap.String("from_status", i.Status),
			zap.String("to_status", target),
		)
		return InterviewResponse{}, interviewerrors.ErrInvalidStatusTransition
	}
	if err := apply(i); err != nil {
		return InterviewResponse{}, err
	}
	i.Status = target

	if err := qtx.Update(ctx, i); err != nil {
		s.logger.Error("transition interview persist failed", zap.String("interview_id", id), zap.Error(err))
		return InterviewResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return InterviewResponse{}, err
	}
	s.logger.Info("transition interview success",
		zap.String("interview_id", id),
		zap.String("status", target),
	)
	return mapToResponse(*i), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return interviewerrors.ErrInvalidInterviewID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	hasFeedback, err := qtx.HasFeedback(ctx, companyID, id)
	if err != nil {
		return err
	}
	if hasFeedback {
		return interviewerrors.ErrInterviewHasFeedback
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapNotFound(err)
	}
	return tx.Commit()
}

func (s *service) writeScheduledEvent(ctx context.Context, tx *sql.Tx, i *Interview, rescheduled bool) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event := events.InterviewScheduledEvent{
		EventType:     events.InterviewScheduledType,
		RequestID:     rid,
		InterviewID:   i.ID.String(),
		CandidateID:   i.CandidateID.String(),
		CompanyID:     i.CompanyID.String(),
		InterviewerID: i.InterviewerID.String(),
		ScheduledAt:   i.ScheduledAt,
		Rescheduled:   rescheduled,
		OccurredAt:    time.Now().UTC(),
	}
	row, err := kafka.NewOutboxEvent(rid, event)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("interview scheduled outbox persist failed",
			zap.String("interview_id", i.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func validateVenue(mode, link, location string) error {
	switch mode {
	case ModeOnline:
		if strings.TrimSpace(link) == "" {
			return interviewerrors.ErrMeetingLinkRequired
		}
	case ModeOnsite:
		if strings.TrimSpace(location) == "" {
			return interviewerrors.ErrLocationRequired
		}
	}
	return nil
}

func parseSchedule(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, interviewerrors.ErrInvalidScheduleFormat
	}
	if !t.After(time.Now()) {
		return time.Time{}, interviewerrors.ErrScheduleInPast
	}
	return t.UTC(), nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return interviewerrors.ErrInterviewNotFound
	}
	return err
}

func mapToResponse(i Interview) InterviewResponse {
	resp := InterviewResponse{
		ID:              i.ID.String(),
		CompanyID:       i.CompanyID.String(),
		CandidateID:     i.CandidateID.String(),
		InterviewerID:   i.InterviewerID.String(),
		Round:           i.Round,
		Mode:            i.Mode,
		ScheduledAt:     i.ScheduledAt.Format(time.RFC3339),
		EndsAt:          i.EndsAt().Format(time.RFC3339),
		DurationMinutes: i.DurationMinutes,
		MeetingLink:     i.MeetingLink,
		Location:        i.Location,
		Notes:           i.Notes,
		Status:          i.Status,
		CancelReason:    i.CancelReason,
		CreatedBy:       i.CreatedBy.String(),
	}
	if i.CompletedAt != nil {
		v := i.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	return resp
}

func mapToListResponse(interviews []Interview) []InterviewResponse {
	resp := make([]InterviewResponse, len(interviews))
	for i, iv := range interviews {
		resp[i] = mapToResponse(iv)
	}
	return resp
}

// invalidateCandidateOptions drops the cached candidate dropdown, which
// shows each candidate's stage.
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
