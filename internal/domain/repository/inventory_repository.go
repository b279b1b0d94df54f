package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
)

// LowStockRow fila cruda del listado de productos bajo punto de reorden
// (join inventario-producto-bodega; la produce la DB).
type LowStockRow struct {
	WarehouseID   string
	WarehouseName string
	ProductID     string
	SKU           string
	ProductName   string
	Available     decimal.Decimal
	ReorderPoint  decimal.Decimal
	ReorderQty    decimal.Decimal
}

// InventoryRepository define el puerto de persistencia para las filas de inventario.
// Get devuelve una fila en cero si no existe (el par bodega-producto aún no tiene stock).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y devuelve nil si no existe:
// el caso de uso decide si el flujo puede materializarla (solo las entradas
// crean filas). Usar solo dentro de una transacción.
type InventoryRepository interface {
	Get(warehouseID, productID string) (*entity.Inventory, error)
	GetForUpdate(warehouseID, productID string) (*entity.Inventory, error)
	Upsert(inv *entity.Inventory) error
	Search(q SearchQuery) ([]*entity.Inventory, int, error)
	ListBelowReorderPoint(ctx context.Context, warehouseID string) ([]LowStockRow, error)
}
