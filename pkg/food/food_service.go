package food

import (
	"context"
	"errors"
	"strings"

	"caloreat/domain"
	"caloreat/entities"
	"caloreat/pkg/oracle"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	searchLimit         = 50
	maxParallelAnalysis = 4
)

type (
	FoodService interface {
		// Resolve never fails on well-formed input. An unresolved name comes
		// back with nil Nutritions.
		Resolve(ctx context.Context, name string) domain.FoodResolution
		ResolveMany(ctx context.Context, names []string) []domain.FoodResolution
		SearchFoods(ctx context.Context, query string) ([]domain.FoodResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		oracle         oracle.Client
		logger         *zap.Logger
	}
)

func NewFoodService(foodRepository FoodRepository, oracleClient oracle.Client, logger *zap.Logger) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		oracle:         oracleClient,
		logger:         logger.Named("food"),
	}
}

func (s *foodService) Resolve(ctx context.Context, raw string) domain.FoodResolution {
	name, ok := NormalizeFoodName(raw)
	if !ok {
		s.logger.Debug("food name rejected", zap.String("input", raw))
		return unresolved(name)
	}

	if cached, ok := s.lookup(ctx, name); ok {
		return cached
	}

	res := s.oracle.Analyze(ctx, name)
	switch res.Status {
	case oracle.StatusTransportError:
		s.logger.Warn("nutrition analysis unavailable", zap.String("food", name), zap.Error(res.Err))
		return unresolved(name)
	case oracle.StatusUnresolved:
		s.logger.Info("nutrition analysis returned no data", zap.String("food", name))
		return unresolved(name)
	}

	if !res.Nutritions.Consistent() {
		s.logger.Warn("nutrition analysis failed integrity check",
			zap.String("food", name),
			zap.String("canonical", res.FoodName),
			zap.Float64("calories", res.Nutritions.Calories),
			zap.Float64("carbs_g", res.Nutritions.CarbsG),
			zap.Float64("protein_g", res.Nutritions.ProteinG),
			zap.Float64("fat_g", res.Nutritions.FatG),
		)
		return unresolved(name)
	}

	canonical, ok := NormalizeFoodName(res.FoodName)
	if !ok {
		canonical = name
	}

	// The corrected name may already be cached, either as a synonym of an
	// existing entry or because a concurrent request just stored it.
	if cached, ok := s.lookup(ctx, canonical); ok {
		return cached
	}

	food := &entities.Food{
		CanonicalName: canonical,
		Source:        entities.FoodSourceLLM,
	}
	facts := toFacts(res.Nutritions)

	err := s.foodRepository.CreateFoodWithFacts(ctx, food, facts)
	switch {
	case err == nil:
		return domain.FoodResolution{FoodName: canonical, Nutritions: toNutritions(facts)}
	case errors.Is(err, domain.ErrFoodConflict):
		s.logger.Info("food already stored by another request", zap.String("canonical", canonical))
		if cached, ok := s.lookup(ctx, canonical); ok {
			return cached
		}
	default:
		s.logger.Warn("failed to store resolved food", zap.String("canonical", canonical), zap.Error(err))
	}

	return domain.FoodResolution{FoodName: canonical, Nutritions: toNutritions(facts)}
}

func (s *foodService) ResolveMany(ctx context.Context, names []string) []domain.FoodResolution {
	results := make([]domain.FoodResolution, len(names))

	var g errgroup.Group
	g.SetLimit(maxParallelAnalysis)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = s.Resolve(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *foodService) SearchFoods(ctx context.Context, query string) ([]domain.FoodResponse, error) {
	query = strings.TrimSpace(query)
	response := []domain.FoodResponse{}
	if query == "" {
		return response, nil
	}

	foods, err := s.foodRepository.SearchFoods(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	for _, f := range foods {
		item := domain.FoodResponse{
			ID:            f.ID.String(),
			CanonicalName: f.CanonicalName,
			Source:        f.Source,
		}
		if f.NutritionFacts != nil {
			item.Nutritions = *toNutritions(f.NutritionFacts)
		}
		response = append(response, item)
	}
	return response, nil
}

// lookup returns the cached resolution for an exact canonical name. Store
// errors are logged and treated as a miss.
func (s *foodService) lookup(ctx context.Context, name string) (domain.FoodResolution, bool) {
	food, err := s.foodRepository.GetFoodByCanonicalName(ctx, name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("food cache lookup failed", zap.String("food", name), zap.Error(err))
		}
		return domain.FoodResolution{}, false
	}
	if food.NutritionFacts == nil {
		return domain.FoodResolution{}, false
	}
	return domain.FoodResolution{FoodName: food.CanonicalName, Nutritions: toNutritions(food.NutritionFacts)}, true
}

func unresolved(name string) domain.FoodResolution {
	return domain.FoodResolution{FoodName: name}
}

func toFacts(n domain.Nutritions) *entities.NutritionFacts {
	return &entities.NutritionFacts{
		Calories:       n.Calories,
		CarbsG:         n.CarbsG,
		ProteinG:       n.ProteinG,
		FatG:           n.FatG,
		SugarG:         nonNegative(n.SugarG),
		FiberG:         nonNegative(n.FiberG),
		SodiumMg:       nonNegative(n.SodiumMg),
		CholesterolMg:  nonNegative(n.CholesterolMg),
		SaturatedFatG:  nonNegative(n.SaturatedFatG),
		Micronutrients: n.Micronutrients,
	}
}

func toNutritions(f *entities.NutritionFacts) *domain.Nutritions {
	return &domain.Nutritions{
		Calories:       f.Calories,
		CarbsG:         f.CarbsG,
		ProteinG:       f.ProteinG,
		FatG:           f.FatG,
		SugarG:         f.SugarG,
		FiberG:         f.FiberG,
		SodiumMg:       f.SodiumMg,
		CholesterolMg:  f.CholesterolMg,
		SaturatedFatG:  f.SaturatedFatG,
		Micronutrients: f.Micronutrients,
	}
}

// nonNegative drops negative secondary values; they are nullable columns.
func nonNegative(p *float64) *float64 {
	if p == nil || *p < 0 {
		return nil
	}
	v := *p
	return &v
}
