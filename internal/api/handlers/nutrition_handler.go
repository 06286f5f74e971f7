package handlers

import (
	"caloreat/domain"
	"caloreat/internal/api/presenters"
	"caloreat/pkg/nutrition"

	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		GetTarget(c *fiber.Ctx) error
		GetAdvice(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService) NutritionHandler {
	return &nutritionHandler{
		nutritionService: nutritionService,
	}
}

func (h *nutritionHandler) GetTarget(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.nutritionService.Target(c.UserContext(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetTarget, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTarget)
}

func (h *nutritionHandler) GetAdvice(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.nutritionService.Advice(c.UserContext(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetAdvice, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdvice)
}
