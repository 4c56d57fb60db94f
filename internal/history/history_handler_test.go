package history_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/history"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAuditService struct {
	ListFn func(ctx context.Context, filter audit.ListFilter) ([]audit.AuditLogResponse, int64, error)
}

func (f *fakeAuditService) Record(ctx context.Context, action, entityType, entityID string, payload any) {
}
func (f *fakeAuditService) List(ctx context.Context, filter audit.ListFilter) ([]audit.AuditLogResponse, int64, error) {
	return f.ListFn(ctx, filter)
}

func TestHistoryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes actor and action filters through", func(t *testing.T) {
		actorID := uuid.NewString()
		svc := &fakeAuditService{
			ListFn: func(ctx context.Context, filter audit.ListFilter) ([]audit.AuditLogResponse, int64, error) {
				assert.Equal(t, actorID, filter.ActorID)
				assert.Equal(t, audit.ActionDelete, filter.Action)
				assert.Equal(t, 2, filter.Page)
				assert.Equal(t, 5, filter.PageSize)
				return []audit.AuditLogResponse{
					{ID: uuid.NewString(), ActorID: actorID, Action: audit.ActionDelete, EntityType: "employee"},
				}, 11, nil
			},
		}

		h := history.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet,
			"/history?actor_id="+actorID+"&action=DELETE&page=2&page_size=5", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), actorID)
		assert.Contains(t, w.Body.String(), `"total":11`)
	})

	t.Run("defaults pagination", func(t *testing.T) {
		svc := &fakeAuditService{
			ListFn: func(ctx context.Context, filter audit.ListFilter) ([]audit.AuditLogResponse, int64, error) {
				assert.Equal(t, 1, filter.Page)
				assert.Equal(t, 20, filter.PageSize)
				return nil, 0, nil
			},
		}

		h := history.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/history", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeAuditService{
			ListFn: func(ctx context.Context, filter audit.ListFilter) ([]audit.AuditLogResponse, int64, error) {
				return nil, 0, errors.New("database error")
			},
		}

		h := history.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/history", nil)

		h.List(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHistoryHandler_ListByEntity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("narrows to one record", func(t *testing.T) {
		entityID := uuid.NewString()
		svc := &fakeAuditService{
			ListFn: func(ctx context.Context, filter audit.ListFilter) ([]audit.AuditLogResponse, int64, error) {
				assert.Equal(t, "employee", filter.EntityType)
				assert.Equal(t, entityID, filter.EntityID)
				return []audit.AuditLogResponse{
					{ID: uuid.NewString(), Action: audit.ActionUpdate, EntityType: "employee", EntityID: entityID},
				}, 1, nil
			},
		}

		r := gin.New()
		h := history.NewHandler(svc)
		r.GET("/history/:entityType/:entityId", h.ListByEntity)

		req := httptest.NewRequest(http.MethodGet, "/history/employee/"+entityID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), entityID)
	})
}
