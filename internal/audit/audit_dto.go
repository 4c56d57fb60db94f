package audit

import "encoding/json"

type ListFilter struct {
	ActorID    string
	EntityType string
	EntityID   string
	Action     string
	Page       int
	PageSize   int
}

type AuditLogResponse struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actor_id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  string          `json:"created_at"`
}
