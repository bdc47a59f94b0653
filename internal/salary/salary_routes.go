package salary

import (
	"go-ats/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	salary := r.Group("/salary")
	salary.Use(middleware.AuthMiddleware())
	{
		salary.GET("/breakdown",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "offer_letter", "read"),
			handler.Breakdown,
		)
		salary.POST("/breakdown",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "offer_letter", "read"),
			handler.Breakdown,
		)
	}
}
