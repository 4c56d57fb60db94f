package history

import (
	"net/http"
	"strconv"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/shared/apperror"
	"hr-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler is a read surface over the audit trail: the same entries, shaped
// as a timeline for the back-office UI.
type Handler struct {
	audits audit.Service
	logger *zap.Logger
}

func NewHandler(audits audit.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("history.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.handler")
	}
	return &Handler{audits: audits, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("history request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// List returns the newest-first change timeline, optionally filtered by
// actor and action.
func (h *Handler) List(c *gin.Context) {
	filter := listFilterFromQuery(c)

	entries, total, err := h.audits.List(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, filter.Page, filter.PageSize)
	response.Success(c, http.StatusOK, entries, &meta)
}

// ListByEntity narrows the timeline to one record, e.g. every change an
// employee ever went through.
func (h *Handler) ListByEntity(c *gin.Context) {
	filter := listFilterFromQuery(c)
	filter.EntityType = c.Param("entityType")
	filter.EntityID = c.Param("entityId")

	entries, total, err := h.audits.List(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, filter.Page, filter.PageSize)
	response.Success(c, http.StatusOK, entries, &meta)
}

func listFilterFromQuery(c *gin.Context) audit.ListFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 {
		pageSize = 20
	}

	return audit.ListFilter{
		ActorID:  c.Query("actor_id"),
		Action:   c.Query("action"),
		Page:     page,
		PageSize: pageSize,
	}
}
