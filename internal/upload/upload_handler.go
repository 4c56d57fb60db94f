package upload

import (
	"encoding/json"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"hr-backoffice/internal/shared/apperror"
	"hr-backoffice/internal/shared/response"
	uploaderrors "hr-backoffice/internal/upload/errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service   Service
	rdb       *redis.Client
	maxUpload int64
	logger    *zap.Logger
}

// NewHandler enforces the size ceiling at the HTTP boundary, before any
// bytes reach the storage provider.
func NewHandler(service Service, rdb *redis.Client, maxUpload int64, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("upload.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upload.handler")
	}
	return &Handler{service: service, rdb: rdb, maxUpload: maxUpload, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("upload request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+4096)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, uploaderrors.ErrFileRequired)
		return
	}

	if fileHeader.Size > h.maxUpload {
		h.logger.Warn("upload rejected: file too large",
			zap.Int64("size", fileHeader.Size),
			zap.Int64("max", h.maxUpload),
		)
		h.writeServiceError(c, uploaderrors.ErrFileTooLarge)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer f.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	resp, err := h.service.Create(c.Request.Context(), fileHeader.Filename, mimeType, f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

// cacheIdempotentResponse stores the created resource under the key set by
// the idempotency middleware so a retried POST replays it.
func (h *Handler) cacheIdempotentResponse(c *gin.Context, resp UploadResponse) {
	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" || h.rdb == nil {
		return
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return
	}
	h.rdb.Set(c.Request.Context(), cacheKey, body, 24*time.Hour)

	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
