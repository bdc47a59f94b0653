package user_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-ats/internal/middleware"
	"go-ats/internal/user"
	usererrors "go-ats/internal/user/errors"
	userMock "go-ats/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	testCompanyID = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"
	testUserID    = "9b2f6c1e-7d4a-4e8b-a1c3-5d6e7f8a9b0c"
)

func newUserRouter(h *user.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxCompanyID, testCompanyID)
		c.Set(middleware.CtxUserID, testUserID)
		c.Next()
	})
	r.GET("/users", h.GetAll)
	r.GET("/users/interviewers", h.GetInterviewers)
	r.GET("/users/:id", h.GetByID)
	r.POST("/users", h.Create)
	r.PATCH("/users/:id/status", h.ToggleStatus)
	r.POST("/users/me/password", h.ChangePassword)
	return r
}

func TestHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	r := newUserRouter(user.NewHandler(svc, zap.NewNop()))

	svc.EXPECT().GetAll(gomock.Any(), testCompanyID, user.ListFilter{Role: "INTERVIEWER"}).Return([]user.UserResponse{
		{ID: "u1", Name: "Ravi"}, {ID: "u2", Name: "Meera"}, {ID: "u3", Name: "Anil"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/users?role=interviewer&page=1&page_size=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []user.UserResponse `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, int64(3), body.Meta.Total)
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	r := newUserRouter(user.NewHandler(svc, zap.NewNop()))

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), testCompanyID, gomock.Any()).Return(user.UserResponse{ID: "u1", Email: "ravi@acme.in"}, nil)

		body, _ := json.Marshal(user.CreateUserRequest{Name: "Ravi", Email: "ravi@acme.in", Password: "s3cretpass"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"name":"Ravi","email":"ravi@acme.in","password":"123"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), testCompanyID, gomock.Any()).Return(user.UserResponse{}, usererrors.ErrUserAlreadyExists)

		body, _ := json.Marshal(user.CreateUserRequest{Name: "Ravi", Email: "ravi@acme.in", Password: "s3cretpass"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_ToggleStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	r := newUserRouter(user.NewHandler(svc, zap.NewNop()))

	svc.EXPECT().ToggleStatus(gomock.Any(), testCompanyID, testUserID, testUserID, false).Return(usererrors.ErrCannotDeactivateSelf)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/users/"+testUserID+"/status", bytes.NewBufferString(`{"is_active":false}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	r := newUserRouter(user.NewHandler(svc, zap.NewNop()))

	svc.EXPECT().ChangePassword(gomock.Any(), testCompanyID, testUserID, "oldpassword", "newpassword").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/users/me/password", bytes.NewBufferString(`{"current_password":"oldpassword","new_password":"newpassword"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
