package candidate

import (
	"go-ats/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	redisClient *redis.Client,
	logger *zap.Logger,
) {
	candidates := r.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware())
	candidates.Use(middleware.ContextLogger(logger))
	{
		candidates.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "candidate", "read"),
			handler.GetAll,
		)

		candidates.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "candidate", "read"),
			handler.GetOptions,
		)

		candidates.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "candidate", "read"),
			handler.GetByID,
		)

		if redisClient != nil {
			candidates.POST("",
				middleware.RateLimitByUser(0.5, 2),
				middleware.RBACAuthorize(rbacService, "candidate", "create"),
				middleware.Idempotency(redisClient),
				handler.Create,
			)
		} else {
			candidates.POST("",
				middleware.RateLimitByUser(0.5, 2),
				middleware.RBACAuthorize(rbacService, "candidate", "create"),
				handler.Create,
			)
		}

		candidates.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "candidate", "update"),
			handler.Update,
		)

		candidates.PUT("/:id/sections/:section",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "candidate", "update"),
			handler.SaveSection,
		)

		candidates.POST("/:id/sections/back",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "candidate", "update"),
			handler.WizardBack,
		)

		candidates.POST("/:id/stage",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "candidate", "move_stage"),
			handler.MoveStage,
		)

		candidates.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "candidate", "delete"),
			handler.Delete,
		)
	}
}
