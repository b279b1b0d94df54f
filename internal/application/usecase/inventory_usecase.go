package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

// InventoryUseCase consultas de inventario (solo lectura; las mutaciones
// pasan por transacciones, traslados y pedidos).
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Get obtiene la fila de inventario de un producto en una bodega
// (fila en cero si el par aún no registra stock).
func (uc *InventoryUseCase) Get(warehouseID, productID string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.Get(warehouseID, productID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Search búsqueda paginada de filas de inventario.
func (uc *InventoryUseCase) Search(in dto.SearchRequest) ([]dto.InventoryResponse, dto.Pagination, error) {
	in.Normalize()
	list, total, err := uc.repo.Search(toSearchQuery(in))
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return items, dto.NewPagination(in.CurrentPage, in.Limit, total), nil
}

// LowStock lista los productos bajo punto de reorden. warehouseID vacío = todas las bodegas.
// SuggestedQty es la reorder_qty del producto, o el déficit contra el punto de reorden
// cuando el producto no define cantidad de pedido.
func (uc *InventoryUseCase) LowStock(ctx context.Context, warehouseID string) ([]dto.LowStockItemDTO, error) {
	rows, err := uc.repo.ListBelowReorderPoint(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItemDTO, 0, len(rows))
	for _, r := range rows {
		suggested := r.ReorderQty
		if suggested.LessThanOrEqual(decimal.Zero) {
			suggested = r.ReorderPoint.Sub(r.Available)
		}
		items = append(items, dto.LowStockItemDTO{
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			ProductID:     r.ProductID,
			SKU:           r.SKU,
			ProductName:   r.ProductName,
			Available:     r.Available,
			ReorderPoint:  r.ReorderPoint,
			SuggestedQty:  suggested,
		})
	}
	return items, nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		WarehouseID: inv.WarehouseID,
		ProductID:   inv.ProductID,
		Quantity:    inv.Quantity,
		Reserved:    inv.Reserved,
		Available:   inv.Available,
		UpdatedAt:   inv.UpdatedAt,
	}
}
