package feedback

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	feedbackerrors "go-ats/internal/feedback/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const interviewStatusCompleted = "COMPLETED"

//go:generate mockgen -source=feedback_service.go -destination=mock/feedback_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, companyID, reviewerID string, req SubmitFeedbackRequest) (FeedbackResponse, error)
	GetByInterview(ctx context.Context, companyID, interviewID string) ([]FeedbackResponse, error)
	GetByCandidate(ctx context.Context, companyID, candidateID string) ([]FeedbackResponse, error)
	Summary(ctx context.Context, companyID, candidateID string) (SummaryResponse, error)
	Update(ctx context.Context, companyID, reviewerID, id string, req UpdateFeedbackRequest) (FeedbackResponse, error)
	Delete(ctx context.Context, companyID, reviewerID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("feedback.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Submit(ctx context.Context, companyID, reviewerID string, req SubmitFeedbackRequest) (FeedbackResponse, error) {
	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return FeedbackResponse{}, feedbackerrors.ErrInvalidReviewerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit feedback begin tx failed", zap.Error(err))
		return FeedbackResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	iv, err := qtx.FindInterview(ctx, companyID, req.InterviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FeedbackResponse{}, feedbackerrors.ErrInterviewNotFound
		}
		return FeedbackResponse{}, err
	}
	if iv.Status != interviewStatusCompleted {
		return FeedbackResponse{}, feedbackerrors.ErrInterviewNotCompleted
	}

	f := &Feedback{
		ID:             uuid.New(),
		CompanyID:      uuid.MustParse(companyID),
		InterviewID:    iv.ID,
		CandidateID:    iv.CandidateID,
		ReviewerID:     reviewerUUID,
		Rating:         req.Rating,
		Recommendation: req.Recommendation,
		Strengths:      strings.TrimSpace(req.Strengths),
		Weaknesses:     strings.TrimSpace(req.Weaknesses),
		Comments:       strings.TrimSpace(req.Comments),
	}
	if err := qtx.Create(ctx, f); err != nil {
		s.logger.Warn("submit feedback persist failed", zap.Error(err))
		return FeedbackResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("submit feedback commit failed", zap.Error(err))
		return FeedbackResponse{}, err
	}

	s.logger.Info("submit feedback success",
		zap.String("feedback_id", f.ID.String()),
		zap.String("interview_id", req.InterviewID),
		zap.String("reviewer_id", reviewerID),
		zap.Int("rating", f.Rating),
	)
	return mapToResponse(*f), nil
}

func (s *service) GetByInterview(ctx context.Context, companyID, interviewID string) ([]FeedbackResponse, error) {
	list, err := s.repo.FindByInterview(ctx, companyID, interviewID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) GetByCandidate(ctx context.Context, companyID, candidateID string) ([]FeedbackResponse, error) {
	list, err := s.repo.FindByCandidate(ctx, companyID, candidateID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) Summary(ctx context.Context, companyID, candidateID string) (SummaryResponse, error) {
	list, err := s.repo.FindByCandidate(ctx, companyID, candidateID)
	if err != nil {
		return SummaryResponse{}, err
	}
	return Summarize(candidateID, list), nil
}

// Summarize averages ratings to two decimals and counts every recommendation,
// including those nobody picked.
func Summarize(candidateID string, list []Feedback) SummaryResponse {
	counts := make(map[string]int, len(Recommendations))
	var total int64
	for _, f := range list {
		counts[f.Recommendation]++
		total += int64(f.Rating)
	}

	resp := SummaryResponse{
		CandidateID:     candidateID,
		TotalFeedback:   len(list),
		Recommendations: make([]RecommendationCount, 0, len(Recommendations)),
	}
	for _, r := range Recommendations {
		resp.Recommendations = append(resp.Recommendations, RecommendationCount{Recommendation: r, Count: counts[r]})
	}
	if len(list) > 0 {
		resp.AverageRating = decimal.NewFromInt(total).
			Div(decimal.NewFromInt(int64(len(list)))).
			Round(2).
			InexactFloat64()
	}
	return resp
}

func (s *service) Update(ctx context.Context, companyID, reviewerID, id string, req UpdateFeedbackRequest) (FeedbackResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FeedbackResponse{}, feedbackerrors.ErrInvalidFeedbackID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FeedbackResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	f, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return FeedbackResponse{}, mapRepositoryError(err)
	}
	if f.ReviewerID.String() != reviewerID {
		return FeedbackResponse{}, feedbackerrors.ErrNotFeedbackOwner
	}

	f.Rating = req.Rating
	f.Recommendation = req.Recommendation
	f.Strengths = strings.TrimSpace(req.Strengths)
	f.Weaknesses = strings.TrimSpace(req.Weaknesses)
	f.Comments = strings.TrimSpace(req.Comments)

	if err := qtx.Update(ctx, f); err != nil {
		return FeedbackResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return FeedbackResponse{}, err
	}
	return mapToResponse(*f), nil
}

func (s *service) Delete(ctx context.Context, companyID, reviewerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return feedbackerrors.ErrInvalidFeedbackID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	f, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if f.ReviewerID.String() != reviewerID {
		return feedbackerrors.ErrNotFeedbackOwner
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	return tx.Commit()
}

func mapToResponse(f Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:             f.ID.String(),
		InterviewID:    f.InterviewID.String(),
		CandidateID:    f.CandidateID.String(),
		ReviewerID:     f.ReviewerID.String(),
		Rating:         f.Rating,
		Recommendation: f.Recommendation,
		Strengths:      f.Strengths,
		Weaknesses:     f.Weaknesses,
		Comments:       f.Comments,
		CreatedAt:      f.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(list []Feedback) []FeedbackResponse {
	resp := make([]FeedbackResponse, len(list))
	for i, f := range list {
		resp[i] = mapToResponse(f)
	}
	return resp
}
