package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de un pedido a crear.
type OrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	WarehouseID   string             `json:"warehouse_id" validate:"required"`
	CustomerName  string             `json:"customer_name" validate:"required,max=200"`
	CustomerEmail string             `json:"customer_email" validate:"omitempty,email"`
	Notes         string             `json:"notes"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ChangeOrderStatusRequest body para PATCH /api/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW PROCESSING PICKING PACKED SHIPPED DELIVERED CANCELLED RETURNED"`
}

// OrderItemResponse línea de un pedido.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse salida de un pedido con sus líneas.
type OrderResponse struct {
	ID            string              `json:"id"`
	Number        string              `json:"number"`
	WarehouseID   string              `json:"warehouse_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	Status        string              `json:"status"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Notes         string              `json:"notes,omitempty"`
	CreatedBy     string              `json:"created_by"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Items         []OrderItemResponse `json:"items"`
}
