package auth

import (
	"hr-backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		authGroup.POST("/register", middleware.RateLimitByIP(0.1, 2), handler.Register)
		authGroup.POST("/refresh", handler.RefreshToken)
		authGroup.POST("/forgot-password", middleware.RateLimitByIP(0.05, 2), handler.ForgotPassword)
		authGroup.POST("/reset-password", middleware.RateLimitByIP(0.05, 2), handler.ResetPassword)

		authGroup.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		authGroup.POST("/change-password", middleware.AuthMiddleware(), middleware.RateLimitByUser(0.5, 2), handler.ChangePassword)
	}
}
