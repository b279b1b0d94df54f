package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecocycle/ecocycle-ims/internal/application/analytics"
)

// DashboardHandler expone el resumen operativo (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Conteos operativos y totales de movimiento del mes en curso.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}
