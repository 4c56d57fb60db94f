package document_test

import (
	"context"
	"encoding/json"
	"testing"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/document"
	documenterrors "hr-backoffice/internal/document/errors"
	"hr-backoffice/internal/events"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/upload"

	auditMock "hr-backoffice/internal/audit/mock"
	documentMock "hr-backoffice/internal/document/mock"
	kafkaMock "hr-backoffice/internal/messaging/kafka/mock"
	uploadMock "hr-backoffice/internal/upload/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type documentServiceDeps struct {
	service  document.Service
	dbMock   sqlmock.Sqlmock
	repo     *documentMock.MockRepository
	uploads  *uploadMock.MockRepository
	outbox   *kafkaMock.MockOutboxRepository
	recorder *auditMock.MockRecorder
}

func setupDocumentServiceTest(t *testing.T) *documentServiceDeps {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	repo := documentMock.NewMockRepository(ctrl)
	uploads := uploadMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	recorder := auditMock.NewMockRecorder(ctrl)

	return &documentServiceDeps{
		service:  document.NewService(db, repo, uploads, outbox, recorder),
		dbMock:   dbMock,
		repo:     repo,
		uploads:  uploads,
		outbox:   outbox,
		recorder: recorder,
	}
}

func TestDocumentService_Create(t *testing.T) {
	ctx := context.Background()
	uploadID := uuid.New()
	storedUpload := &upload.Upload{
		ID:         uploadID,
		StoredName: "abc123.pdf",
		MimeType:   "application/pdf",
		URL:        "http://localhost:3000/files/abc123.pdf",
	}

	t.Run("with OCR payload the document is PROCESSED and no event is queued", func(t *testing.T) {
		deps := setupDocumentServiceTest(t)
		req := document.CreateDocumentRequest{
			Name:     "Payslip March",
			Type:     "PAYSLIP",
			UploadID: uploadID.String(),
			OCRData:  json.RawMessage(`{"engine":"external","text":"total 4200"}`),
		}

		deps.uploads.EXPECT().FindByID(ctx, uploadID).Return(storedUpload, nil)
		deps.dbMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, doc *document.Document) error {
				assert.Equal(t, document.StatusProcessed, doc.Status)
				assert.Equal(t, uploadID, doc.UploadID)
				return nil
			})
		deps.dbMock.ExpectCommit()
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionCreate, "document", gomock.Any(), gomock.Any())

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, document.StatusProcessed, resp.Status)
		assert.Equal(t, storedUpload.URL, resp.UploadURL)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
	})

	t.Run("without OCR payload the document stays PENDING and an event joins the transaction", func(t *testing.T) {
		deps := setupDocumentServiceTest(t)
		req := document.CreateDocumentRequest{
			Name:     "Contract scan",
			Type:     "CONTRACT",
			UploadID: uploadID.String(),
		}

		deps.uploads.EXPECT().FindByID(ctx, uploadID).Return(storedUpload, nil)
		deps.dbMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		var docID string
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, doc *document.Document) error {
				assert.Equal(t, document.StatusPending, doc.Status)
				docID = doc.ID.String()
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, events.DocumentCreatedTopic, event.Topic)
				assert.Equal(t, "document_created", event.EventType)
				assert.Equal(t, docID, event.AggregateID)

				var payload events.DocumentCreatedEvent
				assert.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, storedUpload.StoredName, payload.StoredName)
				assert.Equal(t, "application/pdf", payload.MimeType)
				return nil
			})
		deps.dbMock.ExpectCommit()
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionCreate, "document", gomock.Any(), gomock.Any())

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, document.StatusPending, resp.Status)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
	})

	t.Run("unknown upload is rejected before any transaction", func(t *testing.T) {
		deps := setupDocumentServiceTest(t)

		deps.uploads.EXPECT().
			FindByID(ctx, uploadID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, document.CreateDocumentRequest{
			Name:     "x",
			Type:     "OTHER",
			UploadID: uploadID.String(),
		})

		assert.ErrorIs(t, err, documenterrors.ErrUploadNotFound)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
	})

	t.Run("upload already linked maps to conflict and rolls back", func(t *testing.T) {
		deps := setupDocumentServiceTest(t)

		deps.uploads.EXPECT().FindByID(ctx, uploadID).Return(storedUpload, nil)
		deps.dbMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_document_upload_id"})
		deps.dbMock.ExpectRollback()

		_, err := deps.service.Create(ctx, document.CreateDocumentRequest{
			Name:     "dup",
			Type:     "OTHER",
			UploadID: uploadID.String(),
		})

		assert.ErrorIs(t, err, documenterrors.ErrUploadAlreadyLinked)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("removes the row only", func(t *testing.T) {
		deps := setupDocumentServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(&document.Document{ID: id, UploadID: uuid.New()}, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionDelete, "document", id.String(), nil)

		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupDocumentServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, documenterrors.ErrDocumentNotFound)
	})
}

func TestDocumentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("status and payload can be corrected", func(t *testing.T) {
		deps := setupDocumentServiceTest(t)
		existing := &document.Document{
			ID:       id,
			Name:     "old",
			Type:     "OTHER",
			Status:   document.StatusFailed,
			UploadID: uuid.New(),
		}

		deps.repo.EXPECT().FindByID(ctx, id).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, doc *document.Document) error {
				assert.Equal(t, document.StatusProcessed, doc.Status)
				assert.JSONEq(t, `{"text":"manual"}`, string(doc.OCRData))
				return nil
			})
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionUpdate, "document", id.String(), gomock.Any())

		resp, err := deps.service.Update(ctx, id.String(), document.UpdateDocumentRequest{
			Name:    "corrected",
			Type:    "OTHER",
			Status:  document.StatusProcessed,
			OCRData: json.RawMessage(`{"text":"manual"}`),
		})

		assert.NoError(t, err)
		assert.Equal(t, "corrected", resp.Name)
	})
}
