package profile

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ashray02/prescription-wizardry/internal/platform/auth"
)

// Handler provides HTTP handlers for the profile domain.
type Handler struct {
	svc *Service
}

// NewHandler creates a new profile handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all profile routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/profile", h.Get)
	api.PUT("/profile", h.Upsert)
}

func (h *Handler) Get(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	p, err := h.svc.Get(c.Request().Context(), userID)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Upsert(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	var p Profile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.UserID = userID
	if err := h.svc.Upsert(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}
