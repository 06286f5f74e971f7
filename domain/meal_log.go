package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateMealLog = "meal log created successfully"
	MessageSuccessGetMealLogs   = "meal logs retrieved successfully"
	MessageSuccessDeleteMealLog = "meal log deleted successfully"

	MessageFailedCreateMealLog = "failed to create meal log"
	MessageFailedGetMealLogs   = "failed to retrieve meal logs"
	MessageFailedDeleteMealLog = "failed to delete meal log"

	ErrMealLogNotFound   = errors.New("meal log not found")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidNutritions = errors.New("nutrition values must be non-negative")
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

type (
	MealItemRequest struct {
		FoodName   string     `json:"foodname" validate:"required,max=100"`
		Quantity   float64    `json:"quantity" validate:"required,gt=0"`
		Nutritions Nutritions `json:"nutritions"`
	}

	CreateMealLogRequest struct {
		MealType  string                  `json:"meal_type" form:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		EatenAt   time.Time               `json:"eaten_at" form:"eaten_at"`
		MealItems []MealItemRequest       `json:"meal_items" validate:"required,min=1,dive"`
		Images    []*multipart.FileHeader `json:"-" form:"-"`
	}

	MealItemResponse struct {
		ID         string     `json:"id"`
		FoodName   string     `json:"foodname"`
		Quantity   float64    `json:"quantity"`
		Nutritions Nutritions `json:"nutritions"`
	}

	MealLogResponse struct {
		ID        string             `json:"id"`
		MealType  string             `json:"meal_type"`
		EatenAt   time.Time          `json:"eaten_at"`
		ImageURLs []string           `json:"image_urls"`
		MealItems []MealItemResponse `json:"meal_items"`
		CreatedAt time.Time          `json:"created_at"`
	}
)
