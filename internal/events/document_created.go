package events

import "time"

const DocumentCreatedTopic = "documents.created"

// DocumentCreatedEvent is queued through the outbox when a document is
// created without a caller-supplied OCR payload; the consumer extracts text
// from the underlying upload and flips the document status.
type DocumentCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	DocumentID string    `json:"document_id"`
	UploadID   string    `json:"upload_id"`
	StoredName string    `json:"stored_name"`
	MimeType   string    `json:"mime_type"`
	OccurredAt time.Time `json:"occurred_at"`
}
