package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Code      string          `json:"code" validate:"required,min=1,max=20"`
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Address   string          `json:"address"`
	City      string          `json:"city" validate:"max=100"`
	Capacity  decimal.Decimal `json:"capacity"`
	ManagerID *string         `json:"manager_id"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega (campos opcionales).
type UpdateWarehouseRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Address   *string          `json:"address"`
	City      *string          `json:"city" validate:"omitempty,max=100"`
	Capacity  *decimal.Decimal `json:"capacity"`
	ManagerID *string          `json:"manager_id"`
	Status    *string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	City      string          `json:"city"`
	Capacity  decimal.Decimal `json:"capacity"`
	ManagerID *string         `json:"manager_id,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
