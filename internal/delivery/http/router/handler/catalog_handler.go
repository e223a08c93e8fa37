package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nightmap/internal/delivery/http/response"
	"nightmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public catalog handlers.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	logger         *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		logger:         logger,
	}
}

// ListActivities serves the public feed with filters and pagination.
func (h *CatalogHandler) ListActivities(c echo.Context) error {
	input, err := bindListInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.catalogUsecase.ListActivities(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// ListLiveActivities serves the curated feed restricted to live venues.
func (h *CatalogHandler) ListLiveActivities(c echo.Context) error {
	input, err := bindListInput(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.LiveOnly = true

	page, err := h.catalogUsecase.ListActivities(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

func bindListInput(c echo.Context) (*usecase.ListActivitiesInput, error) {
	input := &usecase.ListActivitiesInput{City: c.QueryParam("city")}

	var err error
	if input.GenreID, err = optionalUintQuery(c, "genre"); err != nil {
		return nil, err
	}
	if input.EventTypeID, err = optionalUintQuery(c, "event_type"); err != nil {
		return nil, err
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "page must be a positive integer")
		}
		input.Page = page
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "page_size must be a positive integer")
		}
		input.PageSize = pageSize
	}

	return input, nil
}

func optionalUintQuery(c echo.Context, name string) (*uint64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}

	return &value, nil
}

func uintParam(c echo.Context, name string) (uint64, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}

	return value, nil
}

// GetActivity serves a single venue by id.
func (h *CatalogHandler) GetActivity(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	activity, err := h.catalogUsecase.GetActivity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity, "")
}

// ToggleStatus flips the is_active flag of a venue.
func (h *CatalogHandler) ToggleStatus(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.catalogUsecase.ToggleActive(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Activity status toggled")
}

// ToggleLive flips the live flag of a venue.
func (h *CatalogHandler) ToggleLive(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.catalogUsecase.ToggleLive(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Activity live flag toggled")
}

// ListGenres serves the genre reference table.
func (h *CatalogHandler) ListGenres(c echo.Context) error {
	genres, err := h.catalogUsecase.ListGenres(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, genres, "")
}

// ListEventTypes serves the event type reference table.
func (h *CatalogHandler) ListEventTypes(c echo.Context) error {
	eventTypes, err := h.catalogUsecase.ListEventTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, eventTypes, "")
}

// ListPriceCategories serves the price bracket reference table.
func (h *CatalogHandler) ListPriceCategories(c echo.Context) error {
	priceCategories, err := h.catalogUsecase.ListPriceCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, priceCategories, "")
}

// ListMoods serves the mood reference table.
func (h *CatalogHandler) ListMoods(c echo.Context) error {
	moods, err := h.catalogUsecase.ListMoods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, moods, "")
}

// ListPinTypes serves the pin type reference table.
func (h *CatalogHandler) ListPinTypes(c echo.Context) error {
	pinTypes, err := h.catalogUsecase.ListPinTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pinTypes, "")
}
