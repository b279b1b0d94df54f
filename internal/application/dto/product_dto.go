package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=50"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id" validate:"required"`
	UnitMeasure  string          `json:"unit_measure" validate:"max=20"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	ReorderQty   decimal.Decimal `json:"reorder_qty"`
	Recyclable   bool            `json:"recyclable"`
	UnitWeightKg decimal.Decimal `json:"unit_weight_kg"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"category_id"`
	UnitMeasure  *string          `json:"unit_measure" validate:"omitempty,max=20"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
	ReorderQty   *decimal.Decimal `json:"reorder_qty"`
	Recyclable   *bool            `json:"recyclable"`
	UnitWeightKg *decimal.Decimal `json:"unit_weight_kg"`
	Status       *string          `json:"status" validate:"omitempty,oneof=active discontinued"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id"`
	UnitMeasure  string          `json:"unit_measure"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	ReorderQty   decimal.Decimal `json:"reorder_qty"`
	Recyclable   bool            `json:"recyclable"`
	UnitWeightKg decimal.Decimal `json:"unit_weight_kg"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
