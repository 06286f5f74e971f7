package handlers

import (
	"strconv"

	"caloreat/domain"
	"caloreat/internal/api/presenters"
	"caloreat/pkg/stats"

	"github.com/gofiber/fiber/v2"
)

type (
	StatsHandler interface {
		GetDailyStats(c *fiber.Ctx) error
		GetWeeklyStats(c *fiber.Ctx) error
		GetMonthlyStats(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
	}
)

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandler{
		statsService: statsService,
	}
}

func (h *statsHandler) GetDailyStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.statsService.Daily(c.UserContext(), userID, c.Query("date"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetStats, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *statsHandler) GetWeeklyStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.statsService.Weekly(c.UserContext(), userID, c.Query("end_date"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetStats, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *statsHandler) GetMonthlyStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, domain.ErrInvalidMonth)
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, domain.ErrInvalidMonth)
	}

	res, err := h.statsService.Monthly(c.UserContext(), userID, year, month)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetStats, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}
