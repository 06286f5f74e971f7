package profile

import (
	"context"

	"caloreat/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ProfileRepository interface {
		GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error)
		UpsertProfile(ctx context.Context, profile *entities.UserProfile) error
		GetConditionsByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
		ReplaceConditions(ctx context.Context, userID uuid.UUID, conditions []string) error
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpsertProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"gender", "birthdate", "height_cm", "weight_kg", "goal_type", "updated_at"}),
	}).Create(profile).Error
}

func (r *profileRepository) GetConditionsByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var conditions []string
	if err := r.db.WithContext(ctx).
		Model(&entities.HealthCondition{}).
		Where("user_id = ?", userID).
		Order("condition asc").
		Pluck("condition", &conditions).Error; err != nil {
		return nil, err
	}
	return conditions, nil
}

// ReplaceConditions swaps the user's whole condition set in one transaction.
func (r *profileRepository) ReplaceConditions(ctx context.Context, userID uuid.UUID, conditions []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entities.HealthCondition{}).Error; err != nil {
			return err
		}
		if len(conditions) == 0 {
			return nil
		}

		rows := make([]*entities.HealthCondition, 0, len(conditions))
		for _, c := range conditions {
			rows = append(rows, &entities.HealthCondition{UserID: userID, Condition: c})
		}
		return tx.Create(&rows).Error
	})
}
