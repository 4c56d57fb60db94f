package contract

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive     = "ACTIVE"
	StatusTerminated = "TERMINATED"
	StatusExpired    = "EXPIRED"
)

type Contract struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type       string     `gorm:"type:varchar(50);not null"`
	StartDate  time.Time  `gorm:"type:date;not null"`
	EndDate    *time.Time `gorm:"type:date"`
	Status     string     `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
