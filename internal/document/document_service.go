package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"hr-backoffice/internal/audit"
	documenterrors "hr-backoffice/internal/document/errors"
	"hr-backoffice/internal/events"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/shared/contextutil"
	"hr-backoffice/internal/upload"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error)
	GetAll(ctx context.Context) ([]DocumentResponse, error)
	GetByID(ctx context.Context, id string) (DocumentResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error)
	Update(ctx context.Context, id string, req UpdateDocumentRequest) (DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	uploads  upload.Repository
	outbox   kafka.OutboxRepository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	uploads upload.Repository,
	outboxRepo kafka.OutboxRepository,
	recorder audit.Recorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		uploads:  uploads,
		outbox:   outboxRepo,
		recorder: recorder,
		logger:   l,
	}
}

// Create links a document to its upload. When the caller supplies no OCR
// payload the document stays PENDING and an extraction event is committed
// through the outbox in the same transaction as the row.
func (s *service) Create(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	uploadID, err := uuid.Parse(req.UploadID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrUploadNotFound
	}

	up, err := s.uploads.FindByID(ctx, uploadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentResponse{}, documenterrors.ErrUploadNotFound
		}
		s.logger.Error("create document lookup upload failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return DocumentResponse{}, err
	}

	var employeeID *uuid.UUID
	if req.EmployeeID != "" {
		eid, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return DocumentResponse{}, documenterrors.ErrInvalidDocumentID
		}
		employeeID = &eid
	}

	doc := &Document{
		ID:         uuid.New(),
		Name:       req.Name,
		Type:       req.Type,
		Status:     StatusPending,
		EmployeeID: employeeID,
		UploadID:   uploadID,
		OCRData:    req.OCRData,
	}
	if len(req.OCRData) > 0 {
		doc.Status = StatusProcessed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create document begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, doc); err != nil {
		s.logger.Error("create document persist failed",
			zap.String("request_id", rid),
			zap.String("upload_id", req.UploadID),
			zap.Error(err),
		)
		return DocumentResponse{}, mapRepositoryError(err)
	}

	if doc.Status == StatusPending && s.outbox != nil {
		event := events.DocumentCreatedEvent{
			EventType:  "document_created",
			RequestID:  rid,
			DocumentID: doc.ID.String(),
			UploadID:   up.ID.String(),
			StoredName: up.StoredName,
			MimeType:   up.MimeType,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal document event failed", zap.String("request_id", rid), zap.Error(err))
			return DocumentResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "document",
			AggregateID:   doc.ID.String(),
			EventType:     event.EventType,
			Topic:         events.DocumentCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create document outbox persist failed",
				zap.String("document_id", doc.ID.String()),
				zap.Error(err),
			)
			return DocumentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create document commit failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, err
	}

	s.recorder.Record(ctx, audit.ActionCreate, "document", doc.ID.String(), req)

	s.logger.Info("document created",
		zap.String("request_id", rid),
		zap.String("document_id", doc.ID.String()),
		zap.String("status", doc.Status),
	)

	doc.Upload = up
	return mapToResponse(*doc), nil
}

func (s *service) GetAll(ctx context.Context) ([]DocumentResponse, error) {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all documents failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(docs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DocumentResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidDocumentID
	}

	doc, err := s.repo.FindByID(ctx, did)
	if err != nil {
		return DocumentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*doc), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, documenterrors.ErrInvalidDocumentID
	}

	docs, err := s.repo.FindByEmployee(ctx, eid)
	if err != nil {
		s.logger.Error("get documents by employee failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(docs), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDocumentRequest) (DocumentResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidDocumentID
	}

	doc, err := s.repo.FindByID(ctx, did)
	if err != nil {
		return DocumentResponse{}, mapRepositoryError(err)
	}

	doc.Name = req.Name
	doc.Type = req.Type
	doc.Status = req.Status
	if len(req.OCRData) > 0 {
		doc.OCRData = req.OCRData
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		s.logger.Error("update document failed", zap.String("document_id", id), zap.Error(err))
		return DocumentResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "document", id, req)

	s.logger.Info("document updated", zap.String("document_id", id))
	return mapToResponse(*doc), nil
}

// Delete removes the document row only. The upload keeps living on its own
// so the stored bytes stay reachable until the upload itself is deleted.
func (s *service) Delete(ctx context.Context, id string) error {
	did, err := uuid.Parse(id)
	if err != nil {
		return documenterrors.ErrInvalidDocumentID
	}

	if _, err := s.repo.FindByID(ctx, did); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, did); err != nil {
		s.logger.Error("delete document failed", zap.String("document_id", id), zap.Error(err))
		return err
	}

	s.recorder.Record(ctx, audit.ActionDelete, "document", id, nil)

	s.logger.Info("document deleted", zap.String("document_id", id))
	return nil
}

// ToResponseList is used by the employee read model to embed documents.
func ToResponseList(docs []Document) []DocumentResponse {
	return mapToListResponse(docs)
}

func mapToResponse(doc Document) DocumentResponse {
	res := DocumentResponse{
		ID:       doc.ID.String(),
		Name:     doc.Name,
		Type:     doc.Type,
		Status:   doc.Status,
		UploadID: doc.UploadID.String(),
		OCRData:  doc.OCRData,
	}
	if doc.EmployeeID != nil {
		res.EmployeeID = doc.EmployeeID.String()
	}
	if doc.Upload != nil {
		res.UploadURL = doc.Upload.URL
	}
	return res
}

func mapToListResponse(docs []Document) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i, doc := range docs {
		res[i] = mapToResponse(doc)
	}
	return res
}
