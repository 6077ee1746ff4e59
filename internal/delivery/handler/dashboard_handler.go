package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard-service/internal/application/interfaces"
)

type DashboardHandler struct {
	dashboard interfaces.DashboardService
}

func NewDashboardHandler(dashboard interfaces.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	res, err := h.dashboard.Stats(c.Request().Context(), CallerFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
