package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecocycle/ecocycle-ims/internal/application/analytics"
)

// SustainabilityHandler expone las métricas de reciclaje y desecho (protegido).
type SustainabilityHandler struct {
	uc *analytics.SustainabilityUseCase
}

// NewSustainabilityHandler construye el handler.
func NewSustainabilityHandler(uc *analytics.SustainabilityUseCase) *SustainabilityHandler {
	return &SustainabilityHandler{uc: uc}
}

// Metric godoc
// @Summary      Métrica de sostenibilidad de una bodega
// @Description  Unidades desechadas y recicladas del período, tasa de reciclaje
// @Description  y kilos desviados del relleno sanitario.
// @Tags         sustainability
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Param        period        query  string  true  "Período YYYY-MM"
// @Success      200  {object}  dto.DataResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sustainability/metrics [get]
func (h *SustainabilityHandler) Metric(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	period := c.Query("period")
	if warehouseID == "" || period == "" {
		return respondError(c, fiber.StatusBadRequest, "VALIDATION", "warehouse_id y period son requeridos")
	}
	out, err := h.uc.GetMetric(c.UserContext(), warehouseID, period)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}
