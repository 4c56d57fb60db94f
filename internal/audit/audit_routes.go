package audit

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
	auditGroup := r.Group("/audit")
	auditGroup.Use(middleware.AuthMiddleware())
	auditGroup.Use(middleware.ContextLogger(logger))
	{
		auditGroup.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "audit", "read"),
			handler.List,
		)
	}
}
