package user

import (
	"net/http"
	"strconv"
	"strings"

	"go-ats/internal/middleware"
	"go-ats/internal/shared/apperror"
	"go-ats/internal/shared/contextutil"
	"go-ats/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetString(middleware.CtxCompanyID)
	filter := ListFilter{
		Q:          c.Query("q"),
		Role:       strings.ToUpper(strings.TrimSpace(c.Query("role"))),
		ActiveOnly: c.Query("active") == "true",
	}

	resp, err := h.svc.GetAll(c.Request.Context(), companyID, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetAllWithRoles(c *gin.Context) {
	resp, err := h.svc.GetAllWithRoles(c.Request.Context(), c.GetString(middleware.CtxCompanyID))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetInterviewers(c *gin.Context) {
	resp, err := h.svc.GetInterviewers(c.Request.Context(), c.GetString(middleware.CtxCompanyID))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetByID(ctx, c.GetString(middleware.CtxCompanyID), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, err)
		return
	}

	res, err := h.svc.Create(c.Request.Context(), c.GetString(middleware.CtxCompanyID), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.svc.AssignRole(c.Request.Context(), c.GetString(middleware.CtxCompanyID), c.Param("id"), req.RoleName); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ToggleStatus(c *gin.Context) {
	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, err)
		return
	}

	err := h.svc.ToggleStatus(
		c.Request.Context(),
		c.GetString(middleware.CtxCompanyID),
		c.GetString(middleware.CtxUserID),
		c.Param("id"),
		req.IsActive,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, err)
		return
	}

	err := h.svc.ChangePassword(
		c.Request.Context(),
		c.GetString(middleware.CtxCompanyID),
		c.GetString(middleware.CtxUserID),
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), c.GetString(middleware.CtxCompanyID), c.Param("id"), req.NewPassword); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
