package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderStatusNew        = "NEW"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusPicking    = "PICKING"
	OrderStatusPacked     = "PACKED"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
	OrderStatusReturned   = "RETURNED"
)

// Order representa un pedido de cliente despachado desde una bodega.
// Crear el pedido reserva inventario; las transiciones de estado liberan,
// consumen o reingresan ese stock según el caso.
type Order struct {
	ID            string
	Number        string // legible, ej: "ORD-1717171717"
	WarehouseID   string
	CustomerName  string
	CustomerEmail string
	Status        string
	TotalAmount   decimal.Decimal
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItem
}

// OrderItem línea de un pedido.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}
