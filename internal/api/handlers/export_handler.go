package handlers

import (
	"errors"
	"fmt"

	"kaloria-backend/domain"
	"kaloria-backend/internal/api/presenters"
	"kaloria-backend/pkg/export"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExportHandler interface {
		DownloadCSV(c *fiber.Ctx) error
		EmailCSV(c *fiber.Ctx) error
	}

	exportHandler struct {
		exportService export.ExportService
		validator     *validator.Validate
	}
)

func NewExportHandler(exportService export.ExportService, validator *validator.Validate) ExportHandler {
	return &exportHandler{
		exportService: exportService,
		validator:     validator,
	}
}

// DownloadCSV streams the CSV back as a file attachment. Scope defaults to
// the full log.
func (h *exportHandler) DownloadCSV(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	scope := c.Query("scope", domain.ExportScopeAll)
	date := c.Query("date")

	content, fileName, err := h.exportService.GenerateCSV(c.Context(), userID, scope, date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidExportScope) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExport, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Status(fiber.StatusOK).Send(content)
}

func (h *exportHandler) EmailCSV(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.EmailExportRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEmailExport, err)
	}

	if err := h.exportService.EmailCSV(c.Context(), userID, req.Scope, req.Date); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEmailExport, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEmailExport)
}
