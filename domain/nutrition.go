package domain

var (
	MessageSuccessGetTarget = "nutrition target retrieved successfully"
	MessageSuccessGetAdvice = "nutrition advice retrieved successfully"

	MessageFailedGetTarget = "failed to retrieve nutrition target"
	MessageFailedGetAdvice = "failed to retrieve nutrition advice"
)

const (
	GoalLoss     = "loss"
	GoalMaintain = "maintain"
	GoalGain     = "gain"

	GenderMale   = "male"
	GenderFemale = "female"

	ConditionDiabetes       = "diabetes"
	ConditionHypertension   = "hypertension"
	ConditionHypotension    = "hypotension"
	ConditionHyperlipidemia = "hyperlipidemia"
)

// Warning codes. Clients look these up for localized messages.
const (
	WarningGoalCalorieOver        = "GOAL_CALORIE_OVER"
	WarningGoalCalorieUnder       = "GOAL_CALORIE_UNDER"
	WarningDiabetesCarbOver       = "DIABETES_CARB_OVER"
	WarningHypertensionSodiumOver = "HYPERTENSION_SODIUM_OVER"
	WarningHypotensionLowIntake   = "HYPOTENSION_LOW_INTAKE"
	WarningHyperlipidemiaFatOver  = "HYPERLIPIDEMIA_FAT_OVER"

	WarningSugarOver        = "SUGAR_OVER"
	WarningSodiumOver       = "SODIUM_OVER"
	WarningCholesterolOver  = "CHOLESTEROL_OVER"
	WarningSaturatedFatOver = "SATURATED_FAT_OVER"
	WarningCaffeineOver     = "CAFFEINE_OVER"
	WarningFiberUnder       = "FIBER_UNDER"
	WarningVitaminCUnder    = "VITAMIN_C_UNDER"
	WarningCalciumUnder     = "CALCIUM_UNDER"
)

var WarningMessages = map[string]string{
	WarningGoalCalorieOver:        "Calorie intake is above your goal.",
	WarningGoalCalorieUnder:       "Calorie intake is below your goal.",
	WarningDiabetesCarbOver:       "Diabetes: carbohydrates exceed 55% of calories.",
	WarningHypertensionSodiumOver: "Hypertension: sodium intake exceeds 2000mg.",
	WarningHypotensionLowIntake:   "Hypotension: calorie intake is below 70% of your target.",
	WarningHyperlipidemiaFatOver:  "Hyperlipidemia: fat intake exceeds 70g.",

	WarningSugarOver:        "Sugar intake exceeds the recommended 25g.",
	WarningSodiumOver:       "Sodium intake exceeds the recommended 2000mg.",
	WarningCholesterolOver:  "Cholesterol intake exceeds the recommended 300mg.",
	WarningSaturatedFatOver: "Saturated fat intake exceeds the recommended 20g.",
	WarningCaffeineOver:     "Caffeine intake exceeds the recommended 400mg.",
	WarningFiberUnder:       "Fiber intake is below the recommended 25g.",
	WarningVitaminCUnder:    "Vitamin C intake is below the recommended 100mg.",
	WarningCalciumUnder:     "Calcium intake is below the recommended 1000mg.",
}

// MessagesFor returns the English text for each code. Unknown codes are
// left out.
func MessagesFor(codes []string) map[string]string {
	messages := make(map[string]string, len(codes))
	for _, code := range codes {
		if msg, ok := WarningMessages[code]; ok {
			messages[code] = msg
		}
	}
	return messages
}

type (
	Targets struct {
		Calorie float64 `json:"calorie"`
		Carb    float64 `json:"carb"`
		Protein float64 `json:"protein"`
		Fat     float64 `json:"fat"`
	}

	// Intake is one day's summed consumption.
	Intake struct {
		Calorie float64 `json:"calorie"`
		Carb    float64 `json:"carb"`
		Protein float64 `json:"protein"`
		Fat     float64 `json:"fat"`
		Sodium  float64 `json:"sodium"`
	}

	TargetResponse struct {
		Target Targets `json:"target"`
	}

	NutritionAdviceResponse struct {
		Target   Targets           `json:"target"`
		Current  Intake            `json:"current"`
		Warnings []string          `json:"warnings"`
		Messages map[string]string `json:"messages"`
	}
)
