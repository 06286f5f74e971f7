package food

import (
	"context"
	"errors"
	"strings"

	"caloreat/domain"
	"caloreat/entities"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type (
	FoodRepository interface {
		GetFoodByCanonicalName(ctx context.Context, name string) (*entities.Food, error)
		CreateFoodWithFacts(ctx context.Context, food *entities.Food, facts *entities.NutritionFacts) error
		SearchFoods(ctx context.Context, query string, limit int) ([]*entities.Food, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) GetFoodByCanonicalName(ctx context.Context, name string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).
		Preload("NutritionFacts").
		Where("canonical_name = ?", name).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// CreateFoodWithFacts inserts both rows atomically. A unique-constraint
// violation on canonical_name is reported as domain.ErrFoodConflict.
func (r *foodRepository) CreateFoodWithFacts(ctx context.Context, food *entities.Food, facts *entities.NutritionFacts) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("NutritionFacts").Create(food).Error; err != nil {
			return err
		}
		facts.FoodID = food.ID
		return tx.Create(facts).Error
	})
	if isUniqueViolation(err) {
		return domain.ErrFoodConflict
	}
	if err == nil {
		food.NutritionFacts = facts
	}
	return err
}

func (r *foodRepository) SearchFoods(ctx context.Context, query string, limit int) ([]*entities.Food, error) {
	var foods []*entities.Food
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	if err := r.db.WithContext(ctx).
		Preload("NutritionFacts").
		Where("LOWER(canonical_name) LIKE ? ESCAPE '\\'", pattern).
		Order("canonical_name asc").
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
