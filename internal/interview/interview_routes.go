package interview

import (
	"go-ats/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	redisClient *redis.Client,
) {
	interviews := r.Group("/interviews")
	interviews.Use(middleware.AuthMiddleware())
	{
		interviews.GET("", middleware.RBACAuthorize(rbacService, "interview", "read"), handler.GetAll)
		interviews.GET("/:id", middleware.RBACAuthorize(rbacService, "interview", "read"), handler.GetByID)

		if redisClient != nil {
			interviews.POST("",
				middleware.RBACAuthorize(rbacService, "interview", "schedule"),
				middleware.Idempotency(redisClient),
				handler.Schedule,
			)
		} else {
			interviews.POST("", middleware.RBACAuthorize(rbacService, "interview", "schedule"), handler.Schedule)
		}

		interviews.PUT("/:id/reschedule", middleware.RBACAuthorize(rbacService, "interview", "schedule"), handler.Reschedule)
		interviews.POST("/:id/complete", middleware.RBACAuthorize(rbacService, "interview", "update"), handler.Complete)
		interviews.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "interview", "schedule"), handler.Cancel)
		interviews.POST("/:id/no-show", middleware.RBACAuthorize(rbacService, "interview", "update"), handler.MarkNoShow)
		interviews.DELETE("/:id", middleware.RBACAuthorize(rbacService, "interview", "delete"), handler.Delete)
	}
}
