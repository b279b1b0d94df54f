package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryResponse salida de una fila de inventario.
type InventoryResponse struct {
	WarehouseID string          `json:"warehouse_id"`
	ProductID   string          `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reserved    decimal.Decimal `json:"reserved"`
	Available   decimal.Decimal `json:"available"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LowStockItemDTO producto bajo punto de reorden en una bodega.
type LowStockItemDTO struct {
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	ProductID     string          `json:"product_id"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"product_name"`
	Available     decimal.Decimal `json:"available"`
	ReorderPoint  decimal.Decimal `json:"reorder_point"`
	SuggestedQty  decimal.Decimal `json:"suggested_qty"` // reorder_qty del producto, o el déficit si no está definida
}
