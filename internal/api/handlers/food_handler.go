package handlers

import (
	"caloreat/domain"
	"caloreat/internal/api/presenters"
	"caloreat/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		ResolveFood(c *fiber.Ctx) error
		ResolveFoods(c *fiber.Ctx) error
		SearchFoods(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

// ResolveFood always answers 200 for a well-formed body; an unknown food
// comes back with empty nutritions.
func (h *foodHandler) ResolveFood(c *fiber.Ctx) error {
	req := new(domain.ResolveFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveFood, err)
	}

	res := h.foodService.Resolve(c.UserContext(), req.FoodName)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveFood)
}

func (h *foodHandler) ResolveFoods(c *fiber.Ctx) error {
	req := new(domain.ResolveFoodsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveFood, err)
	}

	res := h.foodService.ResolveMany(c.UserContext(), req.FoodNames)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveFood)
}

func (h *foodHandler) SearchFoods(c *fiber.Ctx) error {
	res, err := h.foodService.SearchFoods(c.UserContext(), c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSearchFoods, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchFoods)
}
