package settings

import (
	"hr-backoffice/internal/middleware"
	"hr-backoffice/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Reads are open to every authenticated role; writes stay with admins.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	settings := r.Group("/settings")
	settings.Use(middleware.AuthMiddleware())
	settings.Use(middleware.ContextLogger(logger))
	{
		settings.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "setting", "read"),
			handler.GetAll,
		)
		settings.GET("/:key",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "setting", "read"),
			handler.GetByKey,
		)
		settings.PUT("",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "setting", "update"),
			handler.Upsert,
		)
		settings.DELETE("/:key",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "setting", "delete"),
			handler.Delete,
		)
	}
}
