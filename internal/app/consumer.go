package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hr-backoffice/internal/document"
	"hr-backoffice/internal/events"
	"hr-backoffice/internal/messaging/kafka/consumer"
	"hr-backoffice/internal/shared/connection"
	"hr-backoffice/internal/storage"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer processes document_created events: it pulls the stored bytes,
// extracts text and flips the document status.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	provider, err := buildStorageProvider(context.Background())
	if err != nil {
		return err
	}
	opener, ok := provider.(storage.Opener)
	if !ok {
		return fmt.Errorf("storage driver %q cannot open stored objects", storageDriver())
	}

	documentRepo := document.NewRepository(gormDB)
	processor := consumer.NewOCRProcessor(documentRepo, opener, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.DocumentCreatedTopic,
		GroupID:        "hr-backoffice-document-ocr",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeDocumentCreated(ctx, reader, processor, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
