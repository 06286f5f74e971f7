package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthCondition is one condition tag for a user, e.g. "diabetes".
type HealthCondition struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_condition" json:"user_id"`
	Condition string    `gorm:"size:50;not null;uniqueIndex:idx_user_condition" json:"condition"`
	Timestamp
}

func (h *HealthCondition) BeforeCreate(tx *gorm.DB) error {
	assignID(&h.ID)
	return nil
}
