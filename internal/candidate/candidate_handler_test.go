package candidate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ats/internal/candidate"
	candidateerrors "go-ats/internal/candidate/errors"
	"go-ats/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCandidateService struct {
	CreateFn      func(ctx context.Context, companyID string, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error)
	GetAllFn      func(ctx context.Context, companyID string, filter candidate.ListFilter) ([]candidate.CandidateResponse, error)
	GetOptionsFn  func(ctx context.Context, companyID string) ([]candidate.CandidateOption, error)
	GetByIDFn     func(ctx context.Context, companyID, id string) (candidate.CandidateResponse, error)
	UpdateFn      func(ctx context.Context, companyID, id string, req candidate.UpdateCandidateRequest) (candidate.CandidateResponse, error)
	SaveSectionFn func(ctx context.Context, companyID, id, section string, req candidate.SaveSectionRequest) (candidate.CandidateResponse, error)
	WizardBackFn  func(ctx context.Context, companyID, id string) (candidate.CandidateResponse, error)
	MoveStageFn   func(ctx context.Context, companyID, id string, req candidate.MoveStageRequest) (candidate.CandidateResponse, error)
	DeleteFn      func(ctx context.Context, companyID, id string) error
}

func (f *fakeCandidateService) Create(ctx context.Context, companyID string, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeCandidateService) GetAll(ctx context.Context, companyID string, filter candidate.ListFilter) ([]candidate.CandidateResponse, error) {
	return f.GetAllFn(ctx, companyID, filter)
}
func (f *fakeCandidateService) GetOptions(ctx context.Context, companyID string) ([]candidate.CandidateOption, error) {
	return f.GetOptionsFn(ctx, companyID)
}
func (f *fakeCandidateService) GetByID(ctx context.Context, companyID, id string) (candidate.CandidateResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}
func (f *fakeCandidateService) Update(ctx context.Context, companyID, id string, req candidate.UpdateCandidateRequest) (candidate.CandidateResponse, error) {
	return f.UpdateFn(ctx, companyID, id, req)
}
func (f *fakeCandidateService) SaveSection(ctx context.Context, companyID, id, section string, req candidate.SaveSectionRequest) (candidate.CandidateResponse, error) {
	return f.SaveSectionFn(ctx, companyID, id, section, req)
}
func (f *fakeCandidateService) WizardBack(ctx context.Context, companyID, id string) (candidate.CandidateResponse, error) {
	return f.WizardBackFn(ctx, companyID, id)
}
func (f *fakeCandidateService) MoveStage(ctx context.Context, companyID, id string, req candidate.MoveStageRequest) (candidate.CandidateResponse, error) {
	return f.MoveStageFn(ctx, companyID, id, req)
}
func (f *fakeCandidateService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxCompanyID, "company-1")
		c.Set(middleware.CtxUserID, "user-1")
		c.Next()
	})
	return r
}

func TestCandidateHandler_Create(t *testing.T) {
	svc := &fakeCandidateService{
		CreateFn: func(_ context.Context, companyID string, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error) {
			assert.Equal(t, "company-1", companyID)
			return candidate.CandidateResponse{ID: "cand-1", FullName: req.FullName, CandidateNumber: "CAN-000001"}, nil
		},
	}
	r := setupRouter()
	r.POST("/candidates", candidate.NewHandler(svc).Create)

	t.Run("created", func(t *testing.T) {
		body := `{"full_name":"Asha Verma","email":"asha@example.com","phone":"9876543210","position_applied":"Backend Engineer"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/candidates", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "CAN-000001")
	})

	t.Run("validation error", func(t *testing.T) {
		body := `{"full_name":"Asha Verma","email":"not-an-email"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/candidates", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCandidateHandler_GetAll(t *testing.T) {
	var gotFilter candidate.ListFilter
	svc := &fakeCandidateService{
		GetAllFn: func(_ context.Context, _ string, filter candidate.ListFilter) ([]candidate.CandidateResponse, error) {
			gotFilter = filter
			return []candidate.CandidateResponse{
				{ID: "1", FullName: "Chitra"},
				{ID: "2", FullName: "asha"},
				{ID: "3", FullName: "Bhavesh"},
			}, nil
		},
	}
	r := setupRouter()
	r.GET("/candidates", candidate.NewHandler(svc).GetAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/candidates?stage=screening&q=a&sort_by=name&sort_dir=asc&page=1&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SCREENING", gotFilter.Stage)
	assert.Equal(t, "a", gotFilter.Q)

	var resp struct {
		Data []candidate.CandidateResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "asha", resp.Data[0].FullName)
	assert.Equal(t, "Bhavesh", resp.Data[1].FullName)
	assert.Equal(t, int64(3), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}

func TestCandidateHandler_SaveSection(t *testing.T) {
	svc := &fakeCandidateService{
		SaveSectionFn: func(_ context.Context, _, id, section string, req candidate.SaveSectionRequest) (candidate.CandidateResponse, error) {
			assert.Equal(t, "cand-1", id)
			if section == "documents" {
				return candidate.CandidateResponse{}, candidateerrors.ErrSectionLocked
			}
			assert.Len(t, req.Education, 1)
			return candidate.CandidateResponse{ID: id, Wizard: candidate.WizardResponse{CurrentSection: "employment"}}, nil
		},
	}
	r := setupRouter()
	r.PUT("/candidates/:id/sections/:section", candidate.NewHandler(svc).SaveSection)

	t.Run("ok", func(t *testing.T) {
		body := `{"education":[{"institution":"IIT Delhi","degree":"B.Tech","start_year":2015}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/candidates/cand-1/sections/education", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"current_section":"employment"`)
	})

	t.Run("locked", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/candidates/cand-1/sections/documents", strings.NewReader(`{"documents":{"pan":"ABCDE1234F"}}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}

func TestCandidateHandler_MoveStage(t *testing.T) {
	svc := &fakeCandidateService{
		MoveStageFn: func(_ context.Context, _, id string, req candidate.MoveStageRequest) (candidate.CandidateResponse, error) {
			return candidate.CandidateResponse{ID: id, Stage: req.Stage}, nil
		},
	}
	r := setupRouter()
	r.POST("/candidates/:id/stage", candidate.NewHandler(svc).MoveStage)

	t.Run("unknown stage rejected at binding", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/candidates/cand-1/stage", strings.NewReader(`{"stage":"PROMOTED"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/candidates/cand-1/stage", strings.NewReader(`{"stage":"SCREENING"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"stage":"SCREENING"`)
	})
}

func TestCandidateHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeCandidateService{
		GetByIDFn: func(context.Context, string, string) (candidate.CandidateResponse, error) {
			return candidate.CandidateResponse{}, candidateerrors.ErrCandidateNotFound
		},
	}
	r := setupRouter()
	r.GET("/candidates/:id", candidate.NewHandler(svc).GetByID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/candidates/x", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
