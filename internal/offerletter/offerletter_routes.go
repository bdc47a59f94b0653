package offerletter

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
	offers := r.Group("/offer-letters")
	offers.Use(middleware.AuthMiddleware())
	{
		offers.GET("", middleware.RBACAuthorize(rbacService, "offer_letter", "read"), handler.GetAll)
		offers.POST("/preview", middleware.RBACAuthorize(rbacService, "offer_letter", "read"), handler.Preview)
		offers.GET("/:id", middleware.RBACAuthorize(rbacService, "offer_letter", "read"), handler.GetByID)
		offers.GET("/:id/breakdown", middleware.RBACAuthorize(rbacService, "offer_letter", "read"), handler.GetBreakdown)
		offers.GET("/:id/pdf", middleware.RBACAuthorize(rbacService, "offer_letter", "read"), handler.DownloadPDF)

		if redisClient != nil {
			offers.POST("",
				middleware.RBACAuthorize(rbacService, "offer_letter", "create"),
				middleware.Idempotency(redisClient),
				handler.Create,
			)
		} else {
			offers.POST("", middleware.RBACAuthorize(rbacService, "offer_letter", "create"), handler.Create)
		}

		offers.POST("/:id/regenerate", middleware.RBACAuthorize(rbacService, "offer_letter", "create"), handler.Regenerate)
		offers.POST("/:id/send", middleware.RBACAuthorize(rbacService, "offer_letter", "send"), handler.Send)
		offers.POST("/:id/accept", middleware.RBACAuthorize(rbacService, "offer_letter", "respond"), handler.Accept)
		offers.POST("/:id/decline", middleware.RBACAuthorize(rbacService, "offer_letter", "respond"), handler.Decline)
		offers.POST("/:id/withdraw", middleware.RBACAuthorize(rbacService, "offer_letter", "send"), handler.Withdraw)
		offers.DELETE("/:id", middleware.RBACAuthorize(rbacService, "offer_letter", "delete"), handler.Delete)
	}
}
