package nutrition

import (
	"slices"

	"caloreat/domain"
)

const (
	lossOverRatio      = 1.10
	maintainUnderRatio = 0.80
	maintainOverRatio  = 1.20
	gainUnderRatio     = 0.90

	diabetesCarbRatio       = 0.55
	hypertensionSodiumMg    = 2000.0
	hypotensionCalorieRatio = 0.70
	hyperlipidemiaFatG      = 70.0
)

// Evaluate returns warning codes for one day's intake. Goal codes come first,
// then condition codes in a fixed order regardless of how conditions are
// listed. Ratio rules are skipped when the target is not positive. A day with
// no calories only triggers the maintain under-eating warning.
func Evaluate(goal string, conditions []string, intake domain.Intake, targets domain.Targets) []string {
	warnings := []string{}
	warnings = append(warnings, goalWarnings(goal, intake.Calorie, targets.Calorie)...)
	warnings = append(warnings, conditionWarnings(conditions, intake, targets.Calorie)...)
	return warnings
}

func goalWarnings(goal string, calorie, target float64) []string {
	if target <= 0 {
		return nil
	}
	ratio := calorie / target

	switch goal {
	case domain.GoalLoss:
		if ratio > lossOverRatio {
			return []string{domain.WarningGoalCalorieOver}
		}
	case domain.GoalMaintain:
		if ratio > maintainOverRatio {
			return []string{domain.WarningGoalCalorieOver}
		}
		if ratio < maintainUnderRatio {
			return []string{domain.WarningGoalCalorieUnder}
		}
	case domain.GoalGain:
		if calorie > 0 && ratio < gainUnderRatio {
			return []string{domain.WarningGoalCalorieUnder}
		}
	}
	return nil
}

func conditionWarnings(conditions []string, intake domain.Intake, target float64) []string {
	var warnings []string

	if slices.Contains(conditions, domain.ConditionDiabetes) && intake.Calorie > 0 {
		if intake.Carb*KcalPerGramCarb/intake.Calorie > diabetesCarbRatio {
			warnings = append(warnings, domain.WarningDiabetesCarbOver)
		}
	}
	if slices.Contains(conditions, domain.ConditionHypertension) && intake.Sodium > hypertensionSodiumMg {
		warnings = append(warnings, domain.WarningHypertensionSodiumOver)
	}
	if slices.Contains(conditions, domain.ConditionHypotension) && target > 0 && intake.Calorie > 0 {
		if intake.Calorie < target*hypotensionCalorieRatio {
			warnings = append(warnings, domain.WarningHypotensionLowIntake)
		}
	}
	if slices.Contains(conditions, domain.ConditionHyperlipidemia) && intake.Fat > hyperlipidemiaFatG {
		warnings = append(warnings, domain.WarningHyperlipidemiaFatOver)
	}
	return warnings
}

// Daily reference amounts for averaged nutrient warnings.
const (
	SugarMaxG        = 25.0
	SodiumMaxMg      = 2000.0
	CholesterolMaxMg = 300.0
	SaturatedFatMaxG = 20.0
	CaffeineMaxMg    = 400.0
	FiberMinG        = 25.0
	VitaminCMinMg    = 100.0
	CalciumMinMg     = 1000.0
)

// DailyAverage is the per-day mean of secondary nutrients over a window.
type DailyAverage struct {
	Sugar        float64
	Fiber        float64
	Sodium       float64
	Cholesterol  float64
	SaturatedFat float64
	VitaminC     float64
	Calcium      float64
	Caffeine     float64
}

// EvaluateAverages checks daily averages against reference amounts. Excess
// codes come before shortfall codes.
func EvaluateAverages(avg DailyAverage) []string {
	var warnings []string
	over := []struct {
		value, limit float64
		code         string
	}{
		{avg.Sugar, SugarMaxG, domain.WarningSugarOver},
		{avg.Sodium, SodiumMaxMg, domain.WarningSodiumOver},
		{avg.Cholesterol, CholesterolMaxMg, domain.WarningCholesterolOver},
		{avg.SaturatedFat, SaturatedFatMaxG, domain.WarningSaturatedFatOver},
		{avg.Caffeine, CaffeineMaxMg, domain.WarningCaffeineOver},
	}
	for _, r := range over {
		if r.value > r.limit {
			warnings = append(warnings, r.code)
		}
	}

	under := []struct {
		value, limit float64
		code         string
	}{
		{avg.Fiber, FiberMinG, domain.WarningFiberUnder},
		{avg.VitaminC, VitaminCMinMg, domain.WarningVitaminCUnder},
		{avg.Calcium, CalciumMinMg, domain.WarningCalciumUnder},
	}
	for _, r := range under {
		if r.value < r.limit {
			warnings = append(warnings, r.code)
		}
	}
	return warnings
}
