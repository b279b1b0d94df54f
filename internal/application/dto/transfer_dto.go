package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferItemRequest línea de un traslado a crear.
type TransferItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateTransferRequest body para POST /api/transfers.
type CreateTransferRequest struct {
	FromWarehouseID string                `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   string                `json:"to_warehouse_id" validate:"required"`
	Notes           string                `json:"notes"`
	Items           []TransferItemRequest `json:"items" validate:"required,min=1,dive"`
}

// TransferItemResponse línea de un traslado.
type TransferItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// TransferResponse salida de un traslado con sus líneas.
type TransferResponse struct {
	ID              string                 `json:"id"`
	Number          string                 `json:"number"`
	FromWarehouseID string                 `json:"from_warehouse_id"`
	ToWarehouseID   string                 `json:"to_warehouse_id"`
	Status          string                 `json:"status"`
	Notes           string                 `json:"notes,omitempty"`
	RequestedBy     string                 `json:"requested_by"`
	CompletedAt     *time.Time             `json:"completed_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	Items           []TransferItemResponse `json:"items"`
}
