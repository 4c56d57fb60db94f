package app

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"hr-backoffice/internal/shared/connection"
	"hr-backoffice/internal/storage"
	"hr-backoffice/internal/storage/disk"
	"hr-backoffice/internal/storage/s3"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultMaxUploadSize = 10 << 20 // 10 MiB

// BuildApp wires infrastructure and registers every module on the router.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := connection.RunMigrations(context.Background(), sqlDB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("database migrations applied")

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	provider, err := buildStorageProvider(context.Background())
	if err != nil {
		return err
	}
	logger.Info("storage provider ready", zap.String("driver", storageDriver()))

	if storageDriver() == "disk" {
		router.Static("/files", uploadDir())
	}

	return registerModules(router, sqlDB, gormDB, rdb, provider, logger)
}

func buildStorageProvider(ctx context.Context) (storage.Provider, error) {
	switch storageDriver() {
	case "disk":
		return disk.New(uploadDir(), os.Getenv("PUBLIC_BASE_URL")), nil
	case "s3":
		return s3.New(ctx, os.Getenv("S3_REGION"), os.Getenv("S3_BUCKET"), os.Getenv("S3_PREFIX"))
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER: %q", os.Getenv("STORAGE_DRIVER"))
	}
}

func storageDriver() string {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "disk"
	}
	return driver
}

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func maxUploadSize() int64 {
	raw := os.Getenv("MAX_UPLOAD_SIZE")
	if raw == "" {
		return defaultMaxUploadSize
	}
	size, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || size <= 0 {
		return defaultMaxUploadSize
	}
	return size
}
