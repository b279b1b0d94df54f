package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory representa el stock de un producto en una bodega.
// Invariante: Available = Quantity - Reserved; las tres columnas se actualizan juntas
// dentro de la misma transacción con la fila bloqueada (SELECT FOR UPDATE).
type Inventory struct {
	WarehouseID string
	ProductID   string
	Quantity    decimal.Decimal // total físico en bodega
	Reserved    decimal.Decimal // comprometido en pedidos
	Available   decimal.Decimal // Quantity - Reserved
	UpdatedAt   time.Time
}

// NewInventory crea una fila de inventario en cero para (bodega, producto).
func NewInventory(warehouseID, productID string) *Inventory {
	return &Inventory{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Quantity:    decimal.Zero,
		Reserved:    decimal.Zero,
		Available:   decimal.Zero,
	}
}
