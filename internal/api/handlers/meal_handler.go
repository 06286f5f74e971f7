package handlers

import (
	"encoding/json"
	"strings"
	"time"

	"caloreat/domain"
	"caloreat/internal/api/presenters"
	"caloreat/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		CreateMealLog(c *fiber.Ctx) error
		GetMealLogs(c *fiber.Ctx) error
		DeleteMealLog(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

// CreateMealLog takes a JSON body, or a multipart form with meal_type,
// eaten_at (RFC 3339), meal_items (a JSON array) and any number of images.
func (h *mealHandler) CreateMealLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req, err := parseCreateMealLog(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMealLog, err)
	}

	res, err := h.mealService.CreateMealLog(c.UserContext(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateMealLog, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMealLog)
}

func (h *mealHandler) GetMealLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	res, err := h.mealService.GetMealLogsByDate(c.UserContext(), c.Query("date"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetMealLogs, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealLogs)
}

func (h *mealHandler) DeleteMealLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.mealService.DeleteMealLog(c.UserContext(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteMealLog, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealLog)
}

func parseCreateMealLog(c *fiber.Ctx) (*domain.CreateMealLogRequest, error) {
	req := new(domain.CreateMealLogRequest)
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := c.BodyParser(req); err != nil {
			return nil, err
		}
		return req, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	req.MealType = c.FormValue("meal_type")
	if raw := c.FormValue("eaten_at"); raw != "" {
		if req.EatenAt, err = time.Parse(time.RFC3339, raw); err != nil {
			return nil, err
		}
	}
	if raw := c.FormValue("meal_items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.MealItems); err != nil {
			return nil, err
		}
	}
	req.Images = form.File["images"]
	return req, nil
}
