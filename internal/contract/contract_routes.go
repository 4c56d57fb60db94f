package contract

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
	contracts := r.Group("/contracts")
	contracts.Use(middleware.AuthMiddleware())
	contracts.Use(middleware.ContextLogger(logger))
	{
		contracts.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "contract", "read"),
			handler.GetAll,
		)
		contracts.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "contract", "read"),
			handler.GetByID,
		)
		contracts.GET("/employee/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "contract", "read"),
			handler.GetByEmployee,
		)
		contracts.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "contract", "create"),
			handler.Create,
		)
		contracts.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "contract", "update"),
			handler.Update,
		)
		contracts.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "contract", "delete"),
			handler.Delete,
		)
	}
}
