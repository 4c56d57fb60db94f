package team

import (
	"time"

	"github.com/google/uuid"
)

// Member is the public-facing team roster entry. It may point at an
// employee record but does not have to; contractors show up here too.
type Member struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"type:varchar(255);not null"`
	Position   string     `gorm:"type:varchar(255);not null"`
	Email      string     `gorm:"type:varchar(255);uniqueIndex:uq_team_member_email;not null"`
	EmployeeID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Member) TableName() string {
	return "team_members"
}
