package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	"github.com/ecocycle/ecocycle-ims/internal/application/usecase"
)

// InventoryHandler expone el estado de stock por bodega y producto (solo lectura;
// las mutaciones de stock pasan por transacciones, traslados y pedidos).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Get godoc
// @Summary      Consultar stock de un producto en una bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Param        product_id    query  string  true  "ID del producto"
// @Success      200  {object}  dto.DataResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	productID := c.Query("product_id")
	if warehouseID == "" || productID == "" {
		return respondError(c, fiber.StatusBadRequest, "VALIDATION", "warehouse_id y product_id son requeridos")
	}
	out, err := h.uc.Get(warehouseID, productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Search godoc
// @Summary      Buscar filas de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchRequest  true  "Criterios de búsqueda"
// @Success      200   {object}  dto.ListResponse
// @Router       /api/inventory/search [post]
func (h *InventoryHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	items, pagination, err := h.uc.Search(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, items, pagination)
}

// LowStock godoc
// @Summary      Listar productos bajo punto de reorden
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.DataResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.UserContext(), c.Query("warehouse_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, fiber.StatusOK, items)
}
