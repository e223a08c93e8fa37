package handler

import (
	"log/slog"
	"net/http"

	"nightmap/internal/delivery/http/response"
	"nightmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConcertHandler holds dependencies for the concert calendar handlers.
type ConcertHandler struct {
	concertUsecase usecase.ConcertUsecase
	logger         *slog.Logger
}

// NewConcertHandler is the constructor for ConcertHandler, injected by Fx.
func NewConcertHandler(concertUsecase usecase.ConcertUsecase, logger *slog.Logger) *ConcertHandler {
	return &ConcertHandler{
		concertUsecase: concertUsecase,
		logger:         logger,
	}
}

// ListConcerts serves every tracked concert event.
func (h *ConcertHandler) ListConcerts(c echo.Context) error {
	concerts, err := h.concertUsecase.ListConcerts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, concerts, "")
}

// CreateConcert records a new concert event.
func (h *ConcertHandler) CreateConcert(c echo.Context) error {
	var input *usecase.CreateConcertInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid concert input")
	}

	concert, err := h.concertUsecase.CreateConcert(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, concert, "Concert created")
}
