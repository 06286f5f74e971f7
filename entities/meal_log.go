package entities

import (
	"time"

	"caloreat/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_meal_logs_user_eaten" json:"user_id"`
	MealType  string    `gorm:"size:30;not null" json:"meal_type"` // breakfast, lunch, dinner, snack
	EatenAt   time.Time `gorm:"not null;index:idx_meal_logs_user_eaten" json:"eaten_at"`
	ImageURLs []string  `gorm:"type:json;serializer:json" json:"image_urls"`

	MealItems []*MealItem `gorm:"foreignKey:MealLogID;constraint:OnDelete:CASCADE" json:"meal_items"`
	Timestamp
}

// BeforeSave normalizes EatenAt to UTC so range predicates compare like with like.
func (m *MealLog) BeforeSave(tx *gorm.DB) error {
	assignID(&m.ID)
	m.EatenAt = m.EatenAt.UTC()
	return nil
}

// MealItem carries a per-unit copy of the nutrients taken when the meal was
// logged; Quantity scales it. It is not joined to Food.
type MealItem struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	MealLogID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"meal_log_id"`
	FoodName   string            `gorm:"size:100;not null" json:"foodname"`
	Quantity   float64           `gorm:"not null" json:"quantity"`
	Nutritions domain.Nutritions `gorm:"type:json;serializer:json" json:"nutritions"`
	Timestamp
}

func (i *MealItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&i.ID)
	return nil
}

// Calories is the item's calories scaled by quantity.
func (i *MealItem) Calories() float64 {
	return i.Nutritions.Calories * i.Quantity
}
