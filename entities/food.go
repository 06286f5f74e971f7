package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FoodSourceLLM   = "llm"
	FoodSourceAdmin = "admin"
	FoodSourceUSDA  = "usda"
)

// Food is the canonical nutrition-fact record. CanonicalName is the only
// lookup key and is unique across all rows.
type Food struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CanonicalName string    `gorm:"size:100;not null;uniqueIndex" json:"canonical_name"`
	Source        string    `gorm:"size:20;not null;default:llm" json:"source"` // llm, admin, usda

	NutritionFacts *NutritionFacts `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"nutrition_facts,omitempty"`
	Timestamp
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	return nil
}

type NutritionFacts struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FoodID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"food_id"`

	Calories float64 `gorm:"not null;default:0" json:"calories"`
	CarbsG   float64 `gorm:"not null;default:0" json:"carbs_g"`
	ProteinG float64 `gorm:"not null;default:0" json:"protein_g"`
	FatG     float64 `gorm:"not null;default:0" json:"fat_g"`

	SugarG        *float64 `json:"sugar_g"`
	FiberG        *float64 `json:"fiber_g"`
	SodiumMg      *float64 `json:"sodium_mg"`
	CholesterolMg *float64 `json:"cholesterol_mg"`
	SaturatedFatG *float64 `json:"saturated_fat_g"`

	// vitamin_c, calcium, caffeine, ...
	Micronutrients map[string]float64 `gorm:"type:json;serializer:json" json:"micronutrients"`
	Timestamp
}

func (n *NutritionFacts) BeforeCreate(tx *gorm.DB) error {
	assignID(&n.ID)
	return nil
}
