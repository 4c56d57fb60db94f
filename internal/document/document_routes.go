package document

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
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware())
	documents.Use(middleware.ContextLogger(logger))
	{
		documents.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "document", "read"),
			handler.GetAll,
		)
		documents.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "document", "read"),
			handler.GetByID,
		)
		documents.GET("/employee/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "document", "read"),
			handler.GetByEmployee,
		)
		documents.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "document", "create"),
			handler.Create,
		)
		documents.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(rbacService, "document", "update"),
			handler.Update,
		)
		documents.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "document", "delete"),
			handler.Delete,
		)
	}
}
