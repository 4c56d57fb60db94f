package upload

import (
	"time"

	"github.com/google/uuid"
)

type Upload struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoredName   string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	OriginalName string    `gorm:"type:varchar(255);not null"`
	MimeType     string    `gorm:"type:varchar(128);not null"`
	Size         int64     `gorm:"not null"`
	URL          string    `gorm:"type:varchar(512);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
