package user

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
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ContextLogger(logger))
	{
		// Profile routes are self-service; no role gate beyond a valid token.
		users.GET("/profile",
			middleware.RateLimitByUser(3, 10),
			handler.GetProfile,
		)
		users.PUT("/profile",
			middleware.RateLimitByUser(1, 3),
			handler.UpdateProfile,
		)

		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "user", "read"),
			handler.GetAll,
		)
		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "user", "read"),
			handler.GetByID,
		)
		users.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "user", "create"),
			handler.Create,
		)
		users.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "user", "update"),
			handler.Update,
		)
		users.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "user", "delete"),
			handler.Delete,
		)
	}
}
