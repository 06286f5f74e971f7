package migration

import (
	"fmt"
	"log"

	"caloreat/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	models := []struct {
		name  string
		model any
	}{
		{"food", &entities.Food{}},
		{"nutrition facts", &entities.NutritionFacts{}},
		{"meal log", &entities.MealLog{}},
		{"meal item", &entities.MealItem{}},
		{"user profile", &entities.UserProfile{}},
		{"health condition", &entities.HealthCondition{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Printf("Error migrating %s database: %v", m.name, err)
			return fmt.Errorf("migrate %s: %w", m.name, err)
		}
	}

	log.Println("Database migration complete")
	return nil
}
