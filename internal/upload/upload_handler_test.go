package upload_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"hr-backoffice/internal/upload"
	uploaderrors "hr-backoffice/internal/upload/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeUploadService struct {
	CreateFn  func(ctx context.Context, originalName, mimeType string, r io.Reader) (upload.UploadResponse, error)
	GetAllFn  func(ctx context.Context) ([]upload.UploadResponse, error)
	GetByIDFn func(ctx context.Context, id string) (upload.UploadResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeUploadService) Create(ctx context.Context, originalName, mimeType string, r io.Reader) (upload.UploadResponse, error) {
	return f.CreateFn(ctx, originalName, mimeType, r)
}
func (f *fakeUploadService) GetAll(ctx context.Context) ([]upload.UploadResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeUploadService) GetByID(ctx context.Context, id string) (upload.UploadResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeUploadService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func multipartBody(t *testing.T, fieldName, fileName, contentType, content string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeUploadService{
			CreateFn: func(ctx context.Context, originalName, mimeType string, r io.Reader) (upload.UploadResponse, error) {
				assert.Equal(t, "payslip.pdf", originalName)
				assert.Equal(t, "application/pdf", mimeType)
				return upload.UploadResponse{
					ID:           uuid.NewString(),
					OriginalName: originalName,
					MimeType:     mimeType,
					Size:         21,
					URL:          "http://localhost:3000/files/abc.pdf",
				}, nil
			},
		}

		h := upload.NewHandler(svc, nil, 10<<20)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, "file", "payslip.pdf", "application/pdf", "%PDF-1.7 fake content")
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", contentType)
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "payslip.pdf")
	})

	t.Run("missing file field", func(t *testing.T) {
		h := upload.NewHandler(&fakeUploadService{}, nil, 10<<20)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, "attachment", "x.pdf", "application/pdf", "data")
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", contentType)
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("file over the ceiling is rejected", func(t *testing.T) {
		h := upload.NewHandler(&fakeUploadService{}, nil, 16)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, "file", "big.pdf", "application/pdf", strings.Repeat("x", 64))
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", contentType)
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		svc := &fakeUploadService{
			CreateFn: func(ctx context.Context, originalName, mimeType string, r io.Reader) (upload.UploadResponse, error) {
				return upload.UploadResponse{}, errors.New("storage unavailable")
			},
		}

		h := upload.NewHandler(svc, nil, 10<<20)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, contentType := multipartBody(t, "file", "x.pdf", "application/pdf", "data")
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set("Content-Type", contentType)
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUploadHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakeUploadService{
			GetByIDFn: func(ctx context.Context, id string) (upload.UploadResponse, error) {
				return upload.UploadResponse{}, uploaderrors.ErrUploadNotFound
			},
		}

		r := gin.New()
		h := upload.NewHandler(svc, nil, 10<<20)
		r.GET("/uploads/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/uploads/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeUploadService{
			GetByIDFn: func(ctx context.Context, got string) (upload.UploadResponse, error) {
				assert.Equal(t, id, got)
				return upload.UploadResponse{ID: got, OriginalName: "cv.pdf"}, nil
			},
		}

		r := gin.New()
		h := upload.NewHandler(svc, nil, 10<<20)
		r.GET("/uploads/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/uploads/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cv.pdf")
	})
}
