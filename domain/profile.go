package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessUpsertProfile    = "profile saved successfully"
	MessageSuccessGetProfile       = "profile retrieved successfully"
	MessageSuccessUpdateConditions = "health conditions saved successfully"
	MessageSuccessGetConditions    = "health conditions retrieved successfully"

	MessageFailedUpsertProfile    = "failed to save profile"
	MessageFailedGetProfile       = "failed to retrieve profile"
	MessageFailedUpdateConditions = "failed to save health conditions"
	MessageFailedGetConditions    = "failed to retrieve health conditions"

	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("profile fields out of range")
)

const (
	MinHeightCm = 90.0
	MaxHeightCm = 300.0
	MinWeightKg = 25.0
	MaxWeightKg = 650.0
)

type (
	UpsertProfileRequest struct {
		Gender    string  `json:"gender" validate:"required,oneof=male female"`
		Birthdate string  `json:"birthdate" validate:"required,datetime=2006-01-02"`
		HeightCm  float64 `json:"height_cm" validate:"required,gt=90,lte=300"`
		WeightKg  float64 `json:"weight_kg" validate:"required,gt=25,lte=650"`
		GoalType  string  `json:"goal_type" validate:"required,oneof=loss maintain gain"`
	}

	ProfileResponse struct {
		Gender    string    `json:"gender"`
		Birthdate time.Time `json:"birthdate"`
		HeightCm  float64   `json:"height_cm"`
		WeightKg  float64   `json:"weight_kg"`
		GoalType  string    `json:"goal_type"`
		Age       int       `json:"age"`
	}

	UpdateConditionsRequest struct {
		Conditions []string `json:"conditions" validate:"max=20,dive,required,max=50"`
	}

	ConditionsResponse struct {
		Conditions []string `json:"conditions"`
	}
)
