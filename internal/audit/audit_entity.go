package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Action verbs recorded for every mutation.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// AuditLog is append-only: no update or delete path exists at any layer.
type AuditLog struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ActorID    uuid.UUID       `gorm:"type:uuid;index"`
	Action     string          `gorm:"type:varchar(50);not null"`
	EntityType string          `gorm:"type:varchar(50);not null;index:idx_audit_logs_entity"`
	EntityID   string          `gorm:"type:varchar(64);not null;index:idx_audit_logs_entity"`
	Payload    json.RawMessage `gorm:"type:jsonb"`
	CreatedAt  time.Time
}
