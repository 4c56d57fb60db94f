package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "employee", "read"),
			handler.GetAll,
		)
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "employee", "read"),
			handler.GetByID,
		)
		employees.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "employee", "create"),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "employee", "update"),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "employee", "delete"),
			handler.Delete,
		)
	}
}
