package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"hr-backoffice/internal/document"
	"hr-backoffice/internal/events"
	"hr-backoffice/internal/messaging/kafka/consumer"

	documentMock "hr-backoffice/internal/document/mock"
	storageMock "hr-backoffice/internal/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type ocrProcessorDeps struct {
	processor *consumer.OCRProcessor
	docs      *documentMock.MockRepository
	store     *storageMock.MockOpener
}

func setupOCRProcessorTest(t *testing.T) *ocrProcessorDeps {
	ctrl := gomock.NewController(t)
	docs := documentMock.NewMockRepository(ctrl)
	store := storageMock.NewMockOpener(ctrl)

	return &ocrProcessorDeps{
		processor: consumer.NewOCRProcessor(docs, store),
		docs:      docs,
		store:     store,
	}
}

func pdfEvent(docID uuid.UUID) events.DocumentCreatedEvent {
	return events.DocumentCreatedEvent{
		EventType:  "document_created",
		DocumentID: docID.String(),
		UploadID:   uuid.NewString(),
		StoredName: "abc123.pdf",
		MimeType:   "application/pdf",
	}
}

func TestOCRProcessor_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed document id is dropped, not retried", func(t *testing.T) {
		deps := setupOCRProcessorTest(t)
		event := pdfEvent(uuid.New())
		event.DocumentID = "not-a-uuid"

		err := deps.processor.Handle(ctx, event)

		assert.NoError(t, err)
	})

	t.Run("unsupported mime type flips the document to FAILED", func(t *testing.T) {
		deps := setupOCRProcessorTest(t)
		docID := uuid.New()
		event := pdfEvent(docID)
		event.MimeType = "image/png"

		deps.docs.EXPECT().
			UpdateOCR(ctx, docID, document.StatusFailed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, ocr json.RawMessage) error {
				var payload map[string]any
				assert.NoError(t, json.Unmarshal(ocr, &payload))
				assert.Contains(t, payload["error"], "unsupported mime type")
				return nil
			})

		err := deps.processor.Handle(ctx, event)

		assert.NoError(t, err)
	})

	t.Run("storage failure bubbles up for retry", func(t *testing.T) {
		deps := setupOCRProcessorTest(t)
		docID := uuid.New()
		boom := errors.New("bucket unreachable")

		deps.store.EXPECT().
			Open(ctx, "abc123.pdf").
			Return(nil, boom)

		err := deps.processor.Handle(ctx, pdfEvent(docID))

		assert.ErrorIs(t, err, boom)
	})

	t.Run("unparsable pdf is terminal and marked FAILED", func(t *testing.T) {
		deps := setupOCRProcessorTest(t)
		docID := uuid.New()

		deps.store.EXPECT().
			Open(ctx, "abc123.pdf").
			Return(io.NopCloser(strings.NewReader("this is not a pdf")), nil)
		deps.docs.EXPECT().
			UpdateOCR(ctx, docID, document.StatusFailed, gomock.Any()).
			Return(nil)

		err := deps.processor.Handle(ctx, pdfEvent(docID))

		assert.NoError(t, err)
	})

	t.Run("persist failure after extraction bubbles up", func(t *testing.T) {
		deps := setupOCRProcessorTest(t)
		docID := uuid.New()
		boom := errors.New("db down")

		deps.store.EXPECT().
			Open(ctx, "abc123.pdf").
			Return(io.NopCloser(strings.NewReader("still not a pdf")), nil)
		deps.docs.EXPECT().
			UpdateOCR(ctx, docID, document.StatusFailed, gomock.Any()).
			Return(boom)

		err := deps.processor.Handle(ctx, pdfEvent(docID))

		assert.ErrorIs(t, err, boom)
	})
}
