package nutrition

import (
	"time"

	"caloreat/domain"
	"caloreat/entities"
	"caloreat/internal/utils"
)

const (
	BaselineCalorie = 2000.0

	defaultAge      = 30
	defaultWeightKg = 70.0
	defaultHeightCm = 170.0
	maxAge          = 120

	carbRatio    = 0.50
	proteinRatio = 0.25
	fatRatio     = 0.25

	KcalPerGramCarb    = 4.0
	KcalPerGramProtein = 4.0
	KcalPerGramFat     = 9.0
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalAdjustments = map[string]float64{
	domain.GoalLoss:     -500,
	domain.GoalMaintain: 0,
	domain.GoalGain:     500,
}

// ComputeTargets derives daily calorie and macro targets from a profile.
// A nil profile yields the macro split of BaselineCalorie. Fields that are
// missing or out of range fall back to defaults individually.
func ComputeTargets(profile *entities.UserProfile, today time.Time) domain.Targets {
	if profile == nil {
		return MacroTargets(BaselineCalorie)
	}

	bmr := BMR(genderOf(profile), weightOf(profile), heightOf(profile), ageOf(profile, today))
	tdee := TDEE(bmr, ActivityModerate)
	return MacroTargets(tdee + goalAdjustments[GoalOf(profile)])
}

// BMR uses the Mifflin-St Jeor equation.
func BMR(gender string, weightKg, heightCm float64, age int) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == domain.GenderFemale {
		return base - 161
	}
	return base + 5
}

func TDEE(bmr float64, level ActivityLevel) float64 {
	m, ok := activityMultipliers[level]
	if !ok {
		m = activityMultipliers[ActivityModerate]
	}
	return bmr * m
}

// MacroTargets splits calories 50/25/25 into carb, protein and fat grams.
func MacroTargets(calorie float64) domain.Targets {
	return domain.Targets{
		Calorie: domain.Round1(calorie),
		Carb:    domain.Round1(calorie * carbRatio / KcalPerGramCarb),
		Protein: domain.Round1(calorie * proteinRatio / KcalPerGramProtein),
		Fat:     domain.Round1(calorie * fatRatio / KcalPerGramFat),
	}
}

// GoalOf returns the profile's goal, or maintain when unset or unknown.
func GoalOf(profile *entities.UserProfile) string {
	if profile == nil {
		return domain.GoalMaintain
	}
	if _, ok := goalAdjustments[profile.GoalType]; ok {
		return profile.GoalType
	}
	return domain.GoalMaintain
}

func genderOf(p *entities.UserProfile) string {
	if p.Gender == domain.GenderFemale {
		return domain.GenderFemale
	}
	return domain.GenderMale
}

func ageOf(p *entities.UserProfile, today time.Time) int {
	if p.Birthdate == nil {
		return defaultAge
	}
	age := utils.Age(*p.Birthdate, today)
	if age < 0 || age > maxAge {
		return defaultAge
	}
	return age
}

func weightOf(p *entities.UserProfile) float64 {
	if p.WeightKg == nil || *p.WeightKg <= domain.MinWeightKg || *p.WeightKg > domain.MaxWeightKg {
		return defaultWeightKg
	}
	return *p.WeightKg
}

func heightOf(p *entities.UserProfile) float64 {
	if p.HeightCm == nil || *p.HeightCm <= domain.MinHeightCm || *p.HeightCm > domain.MaxHeightCm {
		return defaultHeightCm
	}
	return *p.HeightCm
}
