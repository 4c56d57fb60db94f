package app

import (
	"database/sql"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/auth"
	"hr-backoffice/internal/contract"
	"hr-backoffice/internal/document"
	"hr-backoffice/internal/employee"
	"hr-backoffice/internal/history"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/middleware"
	"hr-backoffice/internal/project"
	"hr-backoffice/internal/rbac"
	"hr-backoffice/internal/settings"
	"hr-backoffice/internal/storage"
	"hr-backoffice/internal/team"
	"hr-backoffice/internal/upload"
	"hr-backoffice/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	provider storage.Provider,
	logger *zap.Logger,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	auditRepo := audit.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	contractRepo := contract.NewRepository(gormDB)
	uploadRepo := upload.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	teamRepo := team.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	auditService := audit.NewService(auditRepo, logger)
	authService := auth.NewService(userRepo, rdb, auditService, logger)
	userService := user.NewService(userRepo, auditService, logger)
	employeeService := employee.NewService(employeeRepo, auditService, logger)
	contractService := contract.NewService(contractRepo, auditService, logger)
	uploadService := upload.NewService(uploadRepo, provider, auditService, logger)
	documentService := document.NewService(db, documentRepo, uploadRepo, outboxRepo, auditService, logger)
	projectService := project.NewService(projectRepo, auditService, logger)
	teamService := team.NewService(teamRepo, auditService, logger)
	settingsService := settings.NewService(settingsRepo, rdb, auditService, logger)

	// --- Handlers ---
	auditHandler := audit.NewHandler(auditService, logger)
	authHandler := auth.NewHandler(authService, logger)
	userHandler := user.NewHandler(userService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	contractHandler := contract.NewHandler(contractService, logger)
	uploadHandler := upload.NewHandler(uploadService, rdb, maxUploadSize(), logger)
	documentHandler := document.NewHandler(documentService, logger)
	projectHandler := project.NewHandler(projectService, logger)
	teamHandler := team.NewHandler(teamService, logger)
	settingsHandler := settings.NewHandler(settingsService, logger)
	historyHandler := history.NewHandler(auditService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		contract.RegisterRoutes(api, contractHandler, rbacService, logger)
		upload.RegisterRoutes(api, uploadHandler, rbacService, rdb, logger)
		document.RegisterRoutes(api, documentHandler, rbacService, logger)
		project.RegisterRoutes(api, projectHandler, rbacService, logger)
		team.RegisterRoutes(api, teamHandler, rbacService, logger)
		settings.RegisterRoutes(api, settingsHandler, rbacService, logger)
		audit.RegisterRoutes(api, auditHandler, rbacService, logger)
		history.RegisterRoutes(api, historyHandler, rbacService, logger)
	}

	return nil
}
