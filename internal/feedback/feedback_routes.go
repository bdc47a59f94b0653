package feedback

import (
	"go-ats/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	feedback := r.Group("/feedback")
	feedback.Use(middleware.AuthMiddleware())
	{
		feedback.POST("", middleware.RBACAuthorize(rbacService, "feedback", "create"), handler.Submit)
		feedback.GET("/interviews/:interviewId", middleware.RBACAuthorize(rbacService, "feedback", "read"), handler.GetByInterview)
		feedback.GET("/candidates/:candidateId", middleware.RBACAuthorize(rbacService, "feedback", "read"), handler.GetByCandidate)
		feedback.GET("/candidates/:candidateId/summary", middleware.RBACAuthorize(rbacService, "feedback", "read"), handler.Summary)
		feedback.PUT("/:id", middleware.RBACAuthorize(rbacService, "feedback", "create"), handler.Update)
		feedback.DELETE("/:id", middleware.RBACAuthorize(rbacService, "feedback", "create"), handler.Delete)
	}
}
