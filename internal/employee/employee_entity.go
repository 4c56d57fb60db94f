package employee

import (
	"time"

	"hr-backoffice/internal/contract"
	"hr-backoffice/internal/document"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusOnLeave  = "ON_LEAVE"
)

// Employee is the aggregate root of the personnel records. CPF and the
// registration code are both unique; contracts and documents hang off it.
type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	CPF              string    `gorm:"type:varchar(14);uniqueIndex:uq_employee_cpf;not null"`
	RegistrationCode string    `gorm:"type:varchar(50);uniqueIndex:uq_employee_registration_code;not null"`
	Status           string    `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	Contracts        []contract.Contract `gorm:"foreignKey:EmployeeID"`
	Documents        []document.Document `gorm:"foreignKey:EmployeeID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
