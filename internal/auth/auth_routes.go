package auth

import (
	"go-ats/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Login is throttled per IP to roughly five attempts a minute; token
// refresh and session calls are cheaper and get a looser budget.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	public := r.Group("/auth")
	public.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
	public.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)

	session := r.Group("/auth", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5))
	session.GET("/me", handler.Me)
	session.POST("/logout", handler.Logout)
}
