package domain

import (
	"encoding/json"
	"errors"
	"math"
)

var (
	MessageSuccessResolveFood = "food resolved successfully"
	MessageSuccessSearchFoods = "foods retrieved successfully"

	MessageFailedResolveFood = "failed to resolve food"
	MessageFailedSearchFoods = "failed to search foods"

	ErrFoodConflict = errors.New("food with the same canonical name already exists")
)

// Nutritions is the nutrient vector shared by the oracle wire format, the
// canonical NutritionFacts row and the per-item snapshot stored on a meal.
type Nutritions struct {
	Calories       float64            `json:"calories"`
	CarbsG         float64            `json:"carbs_g"`
	ProteinG       float64            `json:"protein_g"`
	FatG           float64            `json:"fat_g"`
	SugarG         *float64           `json:"sugar_g,omitempty"`
	FiberG         *float64           `json:"fiber_g,omitempty"`
	SodiumMg       *float64           `json:"sodium_mg,omitempty"`
	CholesterolMg  *float64           `json:"cholesterol_mg,omitempty"`
	SaturatedFatG  *float64           `json:"saturated_fat_g,omitempty"`
	Micronutrients map[string]float64 `json:"micronutrients,omitempty"`
}

// Consistent reports whether every macro is non-negative and at least one
// is positive. NaN and Inf are never consistent.
func (n Nutritions) Consistent() bool {
	positive := false
	for _, v := range []float64{n.Calories, n.CarbsG, n.ProteinG, n.FatG} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
		if v > 0 {
			positive = true
		}
	}
	return positive
}

// Value returns the dereferenced secondary field, zero when absent.
func Value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

type (
	ResolveFoodRequest struct {
		FoodName string `json:"foodname" validate:"required"`
	}

	ResolveFoodsRequest struct {
		FoodNames []string `json:"foodnames" validate:"required,min=1,max=20"`
	}

	// FoodResolution is the cache's answer for one name. A nil Nutritions
	// means "unresolved" and is rendered as an empty object.
	FoodResolution struct {
		FoodName   string
		Nutritions *Nutritions
	}

	FoodResponse struct {
		ID            string     `json:"id"`
		CanonicalName string     `json:"canonical_name"`
		Source        string     `json:"source"`
		Nutritions    Nutritions `json:"nutritions"`
	}
)

func (r FoodResolution) Resolved() bool {
	return r.Nutritions != nil
}

func (r FoodResolution) MarshalJSON() ([]byte, error) {
	var nutritions any = struct{}{}
	if r.Nutritions != nil {
		nutritions = r.Nutritions
	}
	return json.Marshal(struct {
		FoodName   string `json:"foodname"`
		Nutritions any    `json:"nutritions"`
	}{r.FoodName, nutritions})
}
