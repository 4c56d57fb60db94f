package audit

import (
	"context"
	"encoding/json"

	"hr-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder is what domain services depend on. Record is best-effort: it runs
// after the domain mutation has committed and a failed audit write must not
// roll that mutation back, so failures are logged and swallowed here.
//
//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Recorder interface {
	Record(ctx context.Context, action, entityType, entityID string, payload any)
}

type Service interface {
	Recorder
	List(ctx context.Context, filter ListFilter) ([]AuditLogResponse, int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, action, entityType, entityID string, payload any) {
	actorID, err := uuid.Parse(contextutil.GetUserID(ctx))
	if err != nil {
		actorID = uuid.Nil
	}

	var raw json.RawMessage
	if payload != nil {
		raw, err = json.Marshal(payload)
		if err != nil {
			s.logger.Error("audit payload marshal failed",
				zap.String("action", action),
				zap.String("entity_type", entityType),
				zap.String("entity_id", entityID),
				zap.Error(err),
			)
			raw = nil
		}
	}

	entry := &AuditLog{
		ID:         uuid.New(),
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    raw,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("audit write failed",
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
		return
	}

	s.logger.Debug("audit entry recorded",
		zap.String("audit_id", entry.ID.String()),
		zap.String("action", action),
		zap.String("entity_type", entityType),
		zap.String("entity_id", entityID),
	)
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]AuditLogResponse, int64, error) {
	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list audit entries failed", zap.Error(err))
		return nil, 0, err
	}

	return mapToListResponse(entries), total, nil
}

func mapToResponse(e AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:         e.ID.String(),
		ActorID:    e.ActorID.String(),
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Payload:    e.Payload,
		CreatedAt:  e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func mapToListResponse(entries []AuditLog) []AuditLogResponse {
	res := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res
}
