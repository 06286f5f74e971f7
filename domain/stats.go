package domain

import "errors"

var (
	MessageSuccessGetStats = "stats retrieved successfully"
	MessageFailedGetStats  = "failed to retrieve stats"

	ErrInvalidMonth = errors.New("invalid year or month")
)

const (
	StatsTypeDaily   = "daily"
	StatsTypeWeekly  = "weekly"
	StatsTypeMonthly = "monthly"
)

type (
	NutrientDetail struct {
		Amount     float64 `json:"amount"`
		Percentage float64 `json:"percentage"`
	}

	Nutrients struct {
		Carbs        NutrientDetail `json:"carbs"`
		Protein      NutrientDetail `json:"protein"`
		Fat          NutrientDetail `json:"fat"`
		Sugar        float64        `json:"sugar"`
		Fiber        float64        `json:"fiber"`
		Sodium       float64        `json:"sodium"`
		Cholesterol  float64        `json:"cholesterol"`
		SaturatedFat float64        `json:"saturatedFat"`
	}

	NutrientGoals struct {
		Sugar        float64 `json:"sugar"`
		Fiber        float64 `json:"fiber"`
		Sodium       float64 `json:"sodium"`
		Cholesterol  float64 `json:"cholesterol"`
		SaturatedFat float64 `json:"saturatedFat"`
	}

	ChartPoint struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
		Goal     float64 `json:"goal"`
	}

	DailyLogEntry struct {
		ID        string  `json:"id"`
		MealType  string  `json:"mealType"`
		Timestamp string  `json:"timestamp"`
		Name      string  `json:"name"`
		Calories  float64 `json:"calories"`
	}

	StatsResponse struct {
		Type          string            `json:"type"`
		Date          string            `json:"date"`
		TotalCalories float64           `json:"totalCalories"`
		Nutrients     Nutrients         `json:"nutrients"`
		Goals         NutrientGoals     `json:"goals"`
		TargetCalorie float64           `json:"targetCalorie"`
		ChartData     []ChartPoint      `json:"chartData,omitempty"`
		DailyLogs     []DailyLogEntry   `json:"dailyLogs,omitempty"`
		Warnings      []string          `json:"warnings,omitempty"`
		Messages      map[string]string `json:"messages,omitempty"`
		Divisor       int               `json:"divisor"`
		ShowAlert     bool              `json:"showAlert"`
	}
)
