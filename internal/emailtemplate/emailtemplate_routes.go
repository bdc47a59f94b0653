package emailtemplate

import (
	"go-ats/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	templates := r.Group("/email-templates")
	templates.Use(middleware.AuthMiddleware())
	{
		templates.GET("", middleware.RBACAuthorize(rbacService, "email_template", "read"), handler.GetAll)
		templates.GET("/active/:type", middleware.RBACAuthorize(rbacService, "email_template", "read"), handler.GetActiveByType)
		templates.GET("/:id", middleware.RBACAuthorize(rbacService, "email_template", "read"), handler.GetByID)
		templates.POST("", middleware.RBACAuthorize(rbacService, "email_template", "manage"), handler.Create)
		templates.PUT("/:id", middleware.RBACAuthorize(rbacService, "email_template", "manage"), handler.Update)
		templates.DELETE("/:id", middleware.RBACAuthorize(rbacService, "email_template", "manage"), handler.Delete)
		templates.POST("/:id/preview", middleware.RBACAuthorize(rbacService, "email_template", "read"), handler.Preview)
	}
}
