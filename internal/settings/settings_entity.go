package settings

import (
	"time"

	"github.com/google/uuid"
)

type Setting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"type:varchar(128);uniqueIndex:uq_setting_key;not null"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
