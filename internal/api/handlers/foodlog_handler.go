package handlers

import (
	"errors"
	"time"

	"kaloria-backend/domain"
	"kaloria-backend/internal/api/presenters"
	"kaloria-backend/pkg/foodlog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodlogHandler interface {
		LogFood(c *fiber.Ctx) error
		GetEntries(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
	}

	foodlogHandler struct {
		foodlogService foodlog.FoodlogService
		validator      *validator.Validate
	}
)

func NewFoodlogHandler(foodlogService foodlog.FoodlogService, validator *validator.Validate) FoodlogHandler {
	return &foodlogHandler{
		foodlogService: foodlogService,
		validator:      validator,
	}
}

// LogFood accepts multipart form data so the optional meal photo can ride
// along with the description.
func (h *foodlogHandler) LogFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := domain.LogFoodRequest{
		Description:  c.FormValue("description"),
		MealCategory: c.FormValue("meal_category"),
		Date:         c.FormValue("date"),
	}

	if image, err := c.FormFile("image"); err == nil {
		req.Image = image
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogFood, err)
	}

	res, err := h.foodlogService.LogFood(c.Context(), req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrLogRequestInFlight) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedLogFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogFood)
}

func (h *foodlogHandler) GetEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	res, err := h.foodlogService.GetEntries(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *foodlogHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	id := c.Params("id")

	if err := h.foodlogService.DeleteEntry(c.Context(), id, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}

func (h *foodlogHandler) GetDailySummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	res, err := h.foodlogService.GetDailySummary(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}

func (h *foodlogHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.foodlogService.GetHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}
