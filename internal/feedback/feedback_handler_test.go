package feedback_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ats/internal/feedback"
	feedbackerrors "go-ats/internal/feedback/errors"
	"go-ats/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeFeedbackService struct {
	feedback.Service
	SubmitFn  func(ctx context.Context, companyID, reviewerID string, req feedback.SubmitFeedbackRequest) (feedback.FeedbackResponse, error)
	SummaryFn func(ctx context.Context, companyID, candidateID string) (feedback.SummaryResponse, error)
}

func (f *fakeFeedbackService) Submit(ctx context.Context, companyID, reviewerID string, req feedback.SubmitFeedbackRequest) (feedback.FeedbackResponse, error) {
	return f.SubmitFn(ctx, companyID, reviewerID, req)
}
func (f *fakeFeedbackService) Summary(ctx context.Context, companyID, candidateID string) (feedback.SummaryResponse, error) {
	return f.SummaryFn(ctx, companyID, candidateID)
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxCompanyID, "company-1")
		c.Set(middleware.CtxUserID, "reviewer-1")
		c.Next()
	})
	return r
}

func TestFeedbackHandler_Submit(t *testing.T) {
	svc := &fakeFeedbackService{
		SubmitFn: func(_ context.Context, _, reviewerID string, req feedback.SubmitFeedbackRequest) (feedback.FeedbackResponse, error) {
			assert.Equal(t, "reviewer-1", reviewerID)
			if req.Rating == 1 {
				return feedback.FeedbackResponse{}, feedbackerrors.ErrInterviewNotCompleted
			}
			return feedback.FeedbackResponse{ID: "fb-1", Rating: req.Rating}, nil
		},
	}
	r := newRouter()
	r.POST("/feedback", feedback.NewHandler(svc).Submit)

	body := func(rating string) string {
		return `{"interview_id":"6f1c1b8e-3a57-4f0e-9a59-0c1f1d2b3c4d","rating":` + rating + `,"recommendation":"HIRE"}`
	}

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"created", body("4"), http.StatusCreated},
		{"interview still open", body("1"), http.StatusUnprocessableEntity},
		{"rating out of range", body("6"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestFeedbackHandler_Summary(t *testing.T) {
	svc := &fakeFeedbackService{
		SummaryFn: func(_ context.Context, _, candidateID string) (feedback.SummaryResponse, error) {
			return feedback.SummaryResponse{CandidateID: candidateID, TotalFeedback: 2, AverageRating: 3.5}, nil
		},
	}
	r := newRouter()
	r.GET("/feedback/candidates/:candidateId/summary", feedback.NewHandler(svc).Summary)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feedback/candidates/cand-9/summary", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"average_rating":3.5`)
	assert.Contains(t, w.Body.String(), `"candidate_id":"cand-9"`)
}
