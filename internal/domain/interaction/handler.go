package interaction

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ashray02/prescription-wizardry/internal/platform/ai"
	"github.com/Ashray02/prescription-wizardry/internal/platform/auth"
	"github.com/Ashray02/prescription-wizardry/pkg/pagination"
)

// Handler provides HTTP handlers for the interaction domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new interaction handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all interaction routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/interactions/check", h.Check)
	api.GET("/interactions", h.History)
}

type checkRequest struct {
	Medication1 string `json:"medication1"`
	Medication2 string `json:"medication2"`
}

func (h *Handler) Check(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.CheckPair(c.Request().Context(), userID, req.Medication1, req.Medication2)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, res)
	case errors.Is(err, ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ai.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
	case errors.Is(err, ai.ErrQuotaExhausted):
		return echo.NewHTTPError(http.StatusPaymentRequired, "AI credits exhausted. Please add credits to continue.")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check interaction")
	}
}

func (h *Handler) History(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.History(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
