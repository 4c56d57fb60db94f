package team

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
	members := r.Group("/team")
	members.Use(middleware.AuthMiddleware())
	members.Use(middleware.ContextLogger(logger))
	{
		members.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "team", "read"),
			handler.GetAll,
		)
		members.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "team", "read"),
			handler.GetByID,
		)
		members.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "team", "create"),
			handler.Create,
		)
		members.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "team", "update"),
			handler.Update,
		)
		members.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "team", "delete"),
			handler.Delete,
		)
	}
}
