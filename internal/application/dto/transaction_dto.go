package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItemRequest línea de una transacción a crear.
type TransactionItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreateTransactionRequest body para POST /api/transactions.
type CreateTransactionRequest struct {
	Type        string                   `json:"type" validate:"required,oneof=STOCK_IN STOCK_OUT ADJUSTMENT RETURN WASTE RECYCLING"`
	WarehouseID string                   `json:"warehouse_id" validate:"required"`
	Reference   string                   `json:"reference" validate:"max=100"`
	Notes       string                   `json:"notes"`
	Items       []TransactionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// TransactionItemResponse línea de una transacción.
type TransactionItemResponse struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id"`
	Quantity         decimal.Decimal  `json:"quantity"`
	UnitCost         decimal.Decimal  `json:"unit_cost"`
	PreviousQuantity *decimal.Decimal `json:"previous_quantity,omitempty"`
}

// TransactionResponse salida de una transacción con sus líneas.
type TransactionResponse struct {
	ID          string                    `json:"id"`
	Number      string                    `json:"number"`
	Type        string                    `json:"type"`
	WarehouseID string                    `json:"warehouse_id"`
	Reference   string                    `json:"reference,omitempty"`
	Notes       string                    `json:"notes,omitempty"`
	Date        time.Time                 `json:"date"`
	CreatedBy   string                    `json:"created_by"`
	CreatedAt   time.Time                 `json:"created_at"`
	Items       []TransactionItemResponse `json:"items"`
}
