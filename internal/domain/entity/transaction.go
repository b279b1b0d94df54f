package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionTypeStockIn    = "STOCK_IN"   // entrada de mercancía
	TransactionTypeStockOut   = "STOCK_OUT"  // salida de mercancía
	TransactionTypeAdjustment = "ADJUSTMENT" // ajuste absoluto de cantidad
	TransactionTypeReturn     = "RETURN"     // devolución (reingresa stock)
	TransactionTypeWaste      = "WASTE"      // merma / desperdicio
	TransactionTypeRecycling  = "RECYCLING"  // salida hacia el flujo de reciclaje
)

// InboundType indica si el tipo suma stock (STOCK_IN, RETURN).
func InboundType(t string) bool {
	return t == TransactionTypeStockIn || t == TransactionTypeReturn
}

// OutboundType indica si el tipo resta stock (STOCK_OUT, WASTE, RECYCLING).
func OutboundType(t string) bool {
	return t == TransactionTypeStockOut || t == TransactionTypeWaste || t == TransactionTypeRecycling
}

// ValidTransactionType valida el tipo contra el catálogo.
func ValidTransactionType(t string) bool {
	return InboundType(t) || OutboundType(t) || t == TransactionTypeAdjustment
}

// Transaction representa un evento inmutable que afecta inventario (cabecera).
// Eliminarla revierte exactamente su efecto sobre el stock.
type Transaction struct {
	ID          string
	Number      string // legible, ej: "TRX-1717171717"
	Type        string
	WarehouseID string
	Reference   string // documento externo asociado (orden de compra, acta, etc.)
	Notes       string
	Date        time.Time
	CreatedBy   string
	CreatedAt   time.Time
	Items       []TransactionItem
}

// TransactionItem línea de una transacción.
// PreviousQuantity guarda la cantidad anterior al aplicar un ADJUSTMENT,
// necesaria para revertirlo al eliminar la transacción.
type TransactionItem struct {
	ID               string
	TransactionID    string
	ProductID        string
	Quantity         decimal.Decimal
	UnitCost         decimal.Decimal
	PreviousQuantity *decimal.Decimal
}
