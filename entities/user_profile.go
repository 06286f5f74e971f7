package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfile struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Gender    string     `gorm:"size:10" json:"gender"` // male, female
	Birthdate *time.Time `gorm:"type:date" json:"birthdate,omitempty"`
	HeightCm  *float64   `json:"height_cm,omitempty"`
	WeightKg  *float64   `json:"weight_kg,omitempty"`
	GoalType  string     `gorm:"size:20" json:"goal_type"` // loss, maintain, gain
	Timestamp
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
