package consumer

import (
	"context"
	"encoding/json"

	"hr-backoffice/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeDocumentCreated reads document_created events and runs text
// extraction for each. Undecodable messages are committed and dropped;
// processing errors leave the offset alone so the message comes back.
func ConsumeDocumentCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	processor *OCRProcessor,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.document_created")
	log.Info("document created consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("document created consumer stopped")
				return
			}
			log.Error("fetch document created message failed", zap.Error(err))
			continue
		}

		var event events.DocumentCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode document_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := processor.Handle(ctx, event); err != nil {
			log.Error("process document_created event failed",
				zap.String("document_id", event.DocumentID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit document created message failed", zap.Error(err))
		}
	}
}
