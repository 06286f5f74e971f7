package stats

import (
	"fmt"
	"strings"
	"time"

	"caloreat/domain"
	"caloreat/entities"
	"caloreat/pkg/meal"
	"caloreat/pkg/nutrition"
)

const (
	WeekDays        = 7
	monthlyBuckets  = 4
	timestampLayout = "15:04"

	sodiumGoalMg       = 2000.0
	cholesterolGoalMg  = 300.0
	fiberPer1000Kcal   = 14.0
	sugarCalorieShare  = 0.10
	satFatCalorieShare = 0.10

	microVitaminC = "vitamin_c"
	microCalcium  = "calcium"
	microCaffeine = "caffeine"
)

// Divisor is the number of days a window's sums are averaged over. It is the
// nominal window length, shortened when the user's first ever log falls
// inside the window, and never below one. A user with no logs gets nominal.
func Divisor(nominal int, windowEnd time.Time, firstLog *time.Time, loc *time.Location) int {
	if firstLog == nil {
		return nominal
	}
	elapsed := daysBetween(firstLog.In(loc), windowEnd.In(loc)) + 1
	return max(1, min(nominal, elapsed))
}

// daysBetween counts calendar days from a to b, ignoring the clock time.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// MacroPercentages returns each macro's share of macro calories, using
// 4/4/9 kcal per gram. All three are zero when there are no macro calories.
func MacroPercentages(carbsG, proteinG, fatG float64) (carb, protein, fat float64) {
	carbKcal := carbsG * nutrition.KcalPerGramCarb
	proteinKcal := proteinG * nutrition.KcalPerGramProtein
	fatKcal := fatG * nutrition.KcalPerGramFat
	total := carbKcal + proteinKcal + fatKcal
	if total <= 0 {
		return 0, 0, 0
	}
	return domain.Round1(carbKcal / total * 100),
		domain.Round1(proteinKcal / total * 100),
		domain.Round1(fatKcal / total * 100)
}

// Averages divides the window totals by divisor into the response shape.
func Averages(t meal.Totals, divisor int) domain.Nutrients {
	d := float64(max(divisor, 1))
	carbPct, proteinPct, fatPct := MacroPercentages(t.CarbsG, t.ProteinG, t.FatG)
	return domain.Nutrients{
		Carbs:        domain.NutrientDetail{Amount: domain.Round1(t.CarbsG / d), Percentage: carbPct},
		Protein:      domain.NutrientDetail{Amount: domain.Round1(t.ProteinG / d), Percentage: proteinPct},
		Fat:          domain.NutrientDetail{Amount: domain.Round1(t.FatG / d), Percentage: fatPct},
		Sugar:        domain.Round1(t.SugarG / d),
		Fiber:        domain.Round1(t.FiberG / d),
		Sodium:       domain.Round1(t.SodiumMg / d),
		Cholesterol:  domain.Round1(t.CholesterolMg / d),
		SaturatedFat: domain.Round1(t.SaturatedFatG / d),
	}
}

func dailyAverage(t meal.Totals, divisor int) nutrition.DailyAverage {
	d := float64(max(divisor, 1))
	return nutrition.DailyAverage{
		Sugar:        domain.Round1(t.SugarG / d),
		Fiber:        domain.Round1(t.FiberG / d),
		Sodium:       domain.Round1(t.SodiumMg / d),
		Cholesterol:  domain.Round1(t.CholesterolMg / d),
		SaturatedFat: domain.Round1(t.SaturatedFatG / d),
		VitaminC:     domain.Round1(t.Micronutrients[microVitaminC] / d),
		Calcium:      domain.Round1(t.Micronutrients[microCalcium] / d),
		Caffeine:     domain.Round1(t.Micronutrients[microCaffeine] / d),
	}
}

// NutrientGoals derives per-day reference amounts from a calorie target.
func NutrientGoals(targetCalorie float64) domain.NutrientGoals {
	return domain.NutrientGoals{
		Sugar:        domain.Round1(targetCalorie * sugarCalorieShare / nutrition.KcalPerGramCarb),
		Fiber:        domain.Round1(targetCalorie / 1000 * fiberPer1000Kcal),
		Sodium:       sodiumGoalMg,
		Cholesterol:  cholesterolGoalMg,
		SaturatedFat: domain.Round1(targetCalorie * satFatCalorieShare / nutrition.KcalPerGramFat),
	}
}

func logCalories(m *entities.MealLog) float64 {
	var total float64
	for _, item := range m.MealItems {
		total += item.Calories()
	}
	return total
}

// WeeklySeries has one point per day from start, zero filled.
func WeeklySeries(mealLogs []*entities.MealLog, start time.Time, loc *time.Location, goal float64) []domain.ChartPoint {
	byDay := make([]float64, WeekDays)
	for _, m := range mealLogs {
		idx := daysBetween(start.In(loc), m.EatenAt.In(loc))
		if idx >= 0 && idx < WeekDays {
			byDay[idx] += logCalories(m)
		}
	}

	points := make([]domain.ChartPoint, 0, WeekDays)
	for i, kcal := range byDay {
		day := start.AddDate(0, 0, i)
		points = append(points, domain.ChartPoint{
			Name:     fmt.Sprintf("%d/%d", int(day.Month()), day.Day()),
			Calories: domain.Round1(kcal),
			Goal:     goal,
		})
	}
	return points
}

// MonthlySeries buckets a month into days 1-7, 8-14, 15-21 and 22-end, each
// divided by seven. Buckets ending after today are left out.
func MonthlySeries(mealLogs []*entities.MealLog, monthStart, today time.Time, loc *time.Location, goal float64) []domain.ChartPoint {
	var buckets [monthlyBuckets]float64
	for _, m := range mealLogs {
		idx := min((m.EatenAt.In(loc).Day()-1)/WeekDays, monthlyBuckets-1)
		buckets[idx] += logCalories(m)
	}

	lastDay := monthStart.AddDate(0, 1, -1).Day()
	points := []domain.ChartPoint{}
	for i, kcal := range buckets {
		endDay := (i + 1) * WeekDays
		if i == monthlyBuckets-1 {
			endDay = lastDay
		}
		bucketEnd := time.Date(monthStart.Year(), monthStart.Month(), endDay, 0, 0, 0, 0, loc)
		if bucketEnd.After(today) {
			continue
		}
		points = append(points, domain.ChartPoint{
			Name:     fmt.Sprintf("Week %d", i+1),
			Calories: domain.Round1(kcal / WeekDays),
			Goal:     goal,
		})
	}
	return points
}

func dailyLogEntries(mealLogs []*entities.MealLog, loc *time.Location) []domain.DailyLogEntry {
	entries := make([]domain.DailyLogEntry, 0, len(mealLogs))
	for _, m := range mealLogs {
		names := make([]string, 0, len(m.MealItems))
		for _, item := range m.MealItems {
			names = append(names, item.FoodName)
		}
		entries = append(entries, domain.DailyLogEntry{
			ID:        m.ID.String(),
			MealType:  m.MealType,
			Timestamp: m.EatenAt.In(loc).Format(timestampLayout),
			Name:      strings.Join(names, ", "),
			Calories:  domain.Round1(logCalories(m)),
		})
	}
	return entries
}
