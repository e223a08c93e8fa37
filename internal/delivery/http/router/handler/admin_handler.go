package handler

import (
	"log/slog"
	"net/http"

	"nightmap/internal/delivery/http/response"
	"nightmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the staff-only catalog management handlers.
type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUsecase usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		logger:       logger,
	}
}

// SaveActivity creates or updates a venue from a JSON body.
func (h *AdminHandler) SaveActivity(c echo.Context) error {
	var input *usecase.SaveActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if input == nil {
		input = &usecase.SaveActivityInput{}
	}

	activity, err := h.adminUsecase.SaveActivity(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if input.ID == 0 {
		status = http.StatusCreated
	}

	return response.Success(c, status, activity, "Activity saved")
}

// UpdateActivity updates an existing venue addressed by its path id.
func (h *AdminHandler) UpdateActivity(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.SaveActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if input == nil {
		input = &usecase.SaveActivityInput{}
	}
	input.ID = id

	activity, err := h.adminUsecase.SaveActivity(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity, "Activity saved")
}

// ImportActivities ingests a CSV file uploaded as the "file" form part.
func (h *AdminHandler) ImportActivities(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "a CSV file upload named 'file' is required")
	}

	src, err := file.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()

	summary, err := h.adminUsecase.ImportActivities(c.Request().Context(), src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Import completed")
}

// ExportActivities streams the full catalog as a CSV download.
func (h *AdminHandler) ExportActivities(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="activities.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := h.adminUsecase.ExportActivities(c.Request().Context(), c.Response()); err != nil {
		// Headers are already out; log instead of switching to the JSON envelope.
		h.logger.Error("Failed to export activities", slog.Any("error", err))

		return errors.WithStack(err)
	}

	return nil
}
