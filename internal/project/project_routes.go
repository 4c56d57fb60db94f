package project

import (
	"hr-backoffice/internal/middleware"
	"hr-backoffice/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	projects.Use(middleware.ContextLogger(logger))
	{
		projects.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "project", "read"),
			handler.GetAll,
		)
		projects.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "project", "read"),
			handler.GetByID,
		)
		projects.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "project", "create"),
			handler.Create,
		)
		projects.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "project", "update"),
			handler.Update,
		)
		projects.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "project", "delete"),
			handler.Delete,
		)
	}
}
