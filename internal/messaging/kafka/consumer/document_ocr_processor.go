package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"hr-backoffice/internal/document"
	"hr-backoffice/internal/events"
	"hr-backoffice/internal/storage"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

const mimePDF = "application/pdf"

// ocrPayload is what lands in documents.ocr_data.
type ocrPayload struct {
	Engine      string `json:"engine"`
	Text        string `json:"text,omitempty"`
	Pages       int    `json:"pages,omitempty"`
	Error       string `json:"error,omitempty"`
	ExtractedAt string `json:"extracted_at"`
}

// OCRProcessor turns document_created events into extracted text. Extraction
// problems are terminal and flip the document to FAILED; infrastructure
// problems bubble up so the message is retried.
type OCRProcessor struct {
	docs   document.Repository
	store  storage.Opener
	logger *zap.Logger
}

func NewOCRProcessor(docs document.Repository, store storage.Opener, logger ...*zap.Logger) *OCRProcessor {
	l := zap.L().Named("kafka.consumer.document_ocr")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.consumer.document_ocr")
	}
	return &OCRProcessor{docs: docs, store: store, logger: l}
}

func (p *OCRProcessor) Handle(ctx context.Context, event events.DocumentCreatedEvent) error {
	docID, err := uuid.Parse(event.DocumentID)
	if err != nil {
		p.logger.Error("document_created event carries a bad document id",
			zap.String("document_id", event.DocumentID),
		)
		return nil
	}

	if !strings.HasPrefix(strings.ToLower(event.MimeType), mimePDF) {
		return p.markFailed(ctx, docID, "unsupported mime type: "+event.MimeType)
	}

	body, err := p.store.Open(ctx, event.StoredName)
	if err != nil {
		p.logger.Error("open stored bytes failed",
			zap.String("document_id", event.DocumentID),
			zap.String("stored_name", event.StoredName),
			zap.Error(err),
		)
		return err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	text, pages, err := extractPDFText(raw)
	if err != nil {
		p.logger.Warn("pdf text extraction failed",
			zap.String("document_id", event.DocumentID),
			zap.Error(err),
		)
		return p.markFailed(ctx, docID, err.Error())
	}

	payload, err := json.Marshal(ocrPayload{
		Engine:      "pdf",
		Text:        text,
		Pages:       pages,
		ExtractedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	if err := p.docs.UpdateOCR(ctx, docID, document.StatusProcessed, payload); err != nil {
		p.logger.Error("persist ocr result failed",
			zap.String("document_id", event.DocumentID),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info("document ocr processed",
		zap.String("document_id", event.DocumentID),
		zap.Int("pages", pages),
		zap.Int("text_len", len(text)),
	)
	return nil
}

func (p *OCRProcessor) markFailed(ctx context.Context, docID uuid.UUID, reason string) error {
	payload, err := json.Marshal(ocrPayload{
		Engine:      "pdf",
		Error:       reason,
		ExtractedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return p.docs.UpdateOCR(ctx, docID, document.StatusFailed, payload)
}

func extractPDFText(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", 0, err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", 0, err
	}

	return strings.TrimSpace(buf.String()), reader.NumPage(), nil
}
