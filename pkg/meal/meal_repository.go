package meal

import (
	"context"
	"errors"
	"time"

	"caloreat/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMealLog(ctx context.Context, mealLog *entities.MealLog) error
		GetMealLogByID(ctx context.Context, id uuid.UUID) (*entities.MealLog, error)
		// GetMealLogsByRange returns logs with eaten_at in [from, to), oldest first.
		GetMealLogsByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entities.MealLog, error)
		// GetFirstMealLogTime returns nil when the user has never logged a meal.
		GetFirstMealLogTime(ctx context.Context, userID uuid.UUID) (*time.Time, error)
		DeleteMealLog(ctx context.Context, id uuid.UUID) error
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMealLog(ctx context.Context, mealLog *entities.MealLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := mealLog.MealItems
		if err := tx.Omit("MealItems").Create(mealLog).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.MealLogID = mealLog.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *mealRepository) GetMealLogByID(ctx context.Context, id uuid.UUID) (*entities.MealLog, error) {
	var mealLog entities.MealLog
	if err := r.db.WithContext(ctx).
		Preload("MealItems").
		Where("id = ?", id).
		First(&mealLog).Error; err != nil {
		return nil, err
	}
	return &mealLog, nil
}

func (r *mealRepository) GetMealLogsByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entities.MealLog, error) {
	var mealLogs []*entities.MealLog
	if err := r.db.WithContext(ctx).
		Preload("MealItems").
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, from.UTC(), to.UTC()).
		Order("eaten_at asc").
		Find(&mealLogs).Error; err != nil {
		return nil, err
	}
	return mealLogs, nil
}

func (r *mealRepository) GetFirstMealLogTime(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var first entities.MealLog
	err := r.db.WithContext(ctx).
		Select("eaten_at").
		Where("user_id = ?", userID).
		Order("eaten_at asc").
		First(&first).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &first.EatenAt, nil
}

func (r *mealRepository) DeleteMealLog(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.MealLog{}, "id = ?", id).Error
}
