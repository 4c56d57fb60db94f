package document

import (
	"encoding/json"
	"time"

	"hr-backoffice/internal/upload"

	"github.com/google/uuid"
)

// Document processing lifecycle.
const (
	StatusPending   = "PENDING"
	StatusProcessed = "PROCESSED"
	StatusFailed    = "FAILED"
)

// Document links exactly one Upload (unique index) to an optional Employee,
// carrying the OCR payload extracted from the stored bytes.
type Document struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Type       string          `gorm:"type:varchar(50);not null"`
	Status     string          `gorm:"type:varchar(50);not null;default:'PENDING'"`
	EmployeeID *uuid.UUID      `gorm:"type:uuid;index"`
	UploadID   uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Upload     *upload.Upload  `gorm:"foreignKey:UploadID"`
	OCRData    json.RawMessage `gorm:"type:jsonb;column:ocr_data"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
