package upload

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/storage"
	uploaderrors "hr-backoffice/internal/upload/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=upload_service.go -destination=mock/upload_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, originalName, mimeType string, r io.Reader) (UploadResponse, error)
	GetAll(ctx context.Context) ([]UploadResponse, error)
	GetByID(ctx context.Context, id string) (UploadResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	provider storage.Provider
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, provider storage.Provider, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("upload.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upload.service")
	}
	return &service{repo: repo, provider: provider, recorder: recorder, logger: l}
}

// Create persists the bytes first, then the metadata row. A collision-proof
// stored name is generated here; the original extension survives so the
// public URL keeps a usable suffix.
func (s *service) Create(ctx context.Context, originalName, mimeType string, r io.Reader) (UploadResponse, error) {
	storedName := generateStoredName(originalName)

	size, err := s.provider.Save(ctx, storedName, r)
	if err != nil {
		s.logger.Error("upload save bytes failed",
			zap.String("stored_name", storedName),
			zap.Error(err),
		)
		return UploadResponse{}, err
	}

	up := &Upload{
		ID:           uuid.New(),
		StoredName:   storedName,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         size,
		URL:          s.provider.URL(storedName),
	}

	if err := s.repo.Create(ctx, up); err != nil {
		s.logger.Error("upload persist metadata failed",
			zap.String("stored_name", storedName),
			zap.Error(err),
		)
		// Orphaned bytes are worse than a lost upload.
		if delErr := s.provider.Delete(ctx, storedName); delErr != nil {
			s.logger.Warn("cleanup of stored bytes failed",
				zap.String("stored_name", storedName),
				zap.Error(delErr),
			)
		}
		return UploadResponse{}, err
	}

	s.recorder.Record(ctx, audit.ActionCreate, "upload", up.ID.String(), mapToResponse(*up))

	s.logger.Info("upload created",
		zap.String("upload_id", up.ID.String()),
		zap.String("stored_name", storedName),
		zap.Int64("size", size),
	)
	return mapToResponse(*up), nil
}

func (s *service) GetAll(ctx context.Context) ([]UploadResponse, error) {
	uploads, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all uploads failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(uploads), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UploadResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UploadResponse{}, uploaderrors.ErrInvalidUploadID
	}

	up, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UploadResponse{}, uploaderrors.ErrUploadNotFound
		}
		return UploadResponse{}, err
	}

	return mapToResponse(*up), nil
}

// Delete removes the stored bytes best-effort, then the metadata row. A
// failed byte removal is logged and does not block the row removal.
func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uploaderrors.ErrInvalidUploadID
	}

	up, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uploaderrors.ErrUploadNotFound
		}
		return err
	}

	if err := s.provider.Delete(ctx, up.StoredName); err != nil {
		s.logger.Warn("delete stored bytes failed",
			zap.String("upload_id", id),
			zap.String("stored_name", up.StoredName),
			zap.Error(err),
		)
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		s.logger.Error("delete upload metadata failed", zap.String("upload_id", id), zap.Error(err))
		return err
	}

	s.recorder.Record(ctx, audit.ActionDelete, "upload", id, nil)

	s.logger.Info("upload deleted", zap.String("upload_id", id))
	return nil
}

// generateStoredName builds a collision-resistant name, keeping only a
// sanitized version of the original extension.
func generateStoredName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		ext = ""
	}
	return uuid.NewString() + ext
}

func mapToResponse(up Upload) UploadResponse {
	return UploadResponse{
		ID:           up.ID.String(),
		StoredName:   up.StoredName,
		OriginalName: up.OriginalName,
		MimeType:     up.MimeType,
		Size:         up.Size,
		URL:          up.URL,
	}
}

func mapToListResponse(uploads []Upload) []UploadResponse {
	res := make([]UploadResponse, len(uploads))
	for i, up := range uploads {
		res[i] = mapToResponse(up)
	}
	return res
}
