package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/pdv-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs de hoy, la semana y el mes, la serie de 7 días,
// el saldo de caja y los productos con stock bajo.
// GET /api/dashboard/summary?period=today|week|month
//
// Las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Query("period"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
