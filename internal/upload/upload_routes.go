package upload

import (
	"hr-backoffice/internal/middleware"
	"hr-backoffice/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	uploads.Use(middleware.ContextLogger(logger))
	{
		uploads.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "upload", "read"),
			handler.GetAll,
		)
		uploads.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "upload", "read"),
			handler.GetByID,
		)
		uploads.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "upload", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		uploads.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "upload", "delete"),
			handler.Delete,
		)
	}
}
