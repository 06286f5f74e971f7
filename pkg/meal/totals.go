package meal

import (
	"caloreat/domain"
	"caloreat/entities"
)

// Totals is the quantity-weighted sum of nutrients over a set of meal logs.
type Totals struct {
	Calories       float64
	CarbsG         float64
	ProteinG       float64
	FatG           float64
	SugarG         float64
	FiberG         float64
	SodiumMg       float64
	CholesterolMg  float64
	SaturatedFatG  float64
	Micronutrients map[string]float64
}

func Sum(mealLogs []*entities.MealLog) Totals {
	t := Totals{Micronutrients: map[string]float64{}}
	for _, m := range mealLogs {
		for _, item := range m.MealItems {
			t.Add(item.Nutritions, item.Quantity)
		}
	}
	return t
}

func (t *Totals) Add(n domain.Nutritions, quantity float64) {
	t.Calories += n.Calories * quantity
	t.CarbsG += n.CarbsG * quantity
	t.ProteinG += n.ProteinG * quantity
	t.FatG += n.FatG * quantity
	t.SugarG += domain.Value(n.SugarG) * quantity
	t.FiberG += domain.Value(n.FiberG) * quantity
	t.SodiumMg += domain.Value(n.SodiumMg) * quantity
	t.CholesterolMg += domain.Value(n.CholesterolMg) * quantity
	t.SaturatedFatG += domain.Value(n.SaturatedFatG) * quantity
	if t.Micronutrients == nil {
		t.Micronutrients = map[string]float64{}
	}
	for k, v := range n.Micronutrients {
		t.Micronutrients[k] += v * quantity
	}
}

// Intake rounds the totals into the shape the warning rules read.
func (t Totals) Intake() domain.Intake {
	return domain.Intake{
		Calorie: domain.Round1(t.Calories),
		Carb:    domain.Round1(t.CarbsG),
		Protein: domain.Round1(t.ProteinG),
		Fat:     domain.Round1(t.FatG),
		Sodium:  domain.Round1(t.SodiumMg),
	}
}
