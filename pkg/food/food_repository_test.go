package food

import (
	"context"
	"errors"
	"testing"

	"caloreat/domain"
	"caloreat/entities"
	"caloreat/internal/testutil"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFoodWithFacts_DuplicateIsConflict(t *testing.T) {
	repo := NewFoodRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateFoodWithFacts(ctx,
		&entities.Food{CanonicalName: "김치", Source: entities.FoodSourceLLM},
		&entities.NutritionFacts{Calories: 30, CarbsG: 5, ProteinG: 2, FatG: 0.5}))

	err := repo.CreateFoodWithFacts(ctx,
		&entities.Food{CanonicalName: "김치", Source: entities.FoodSourceLLM},
		&entities.NutritionFacts{Calories: 31, CarbsG: 5, ProteinG: 2, FatG: 0.5})
	assert.ErrorIs(t, err, domain.ErrFoodConflict)

	// Lookups match the stored key exactly.
	_, err = repo.GetFoodByCanonicalName(ctx, "김치 ")
	assert.Error(t, err)
}

func TestDeletingFoodCascadesToFacts(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFoodRepository(db)
	food := &entities.Food{CanonicalName: "Apple", Source: entities.FoodSourceUSDA}
	require.NoError(t, repo.CreateFoodWithFacts(context.Background(), food,
		&entities.NutritionFacts{Calories: 52, CarbsG: 14, ProteinG: 0.3, FatG: 0.2}))

	require.NoError(t, db.Delete(&entities.Food{}, "id = ?", food.ID).Error)

	var n int64
	require.NoError(t, db.Model(&entities.NutritionFacts{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: foods.canonical_name")))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
