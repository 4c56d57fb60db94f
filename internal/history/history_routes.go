package history

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
	history := r.Group("/history")
	history.Use(middleware.AuthMiddleware())
	history.Use(middleware.ContextLogger(logger))
	{
		history.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "audit", "read"),
			handler.List,
		)
		history.GET("/:entityType/:entityId",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "audit", "read"),
			handler.ListByEntity,
		)
	}
}
