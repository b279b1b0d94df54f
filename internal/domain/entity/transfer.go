package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un traslado entre bodegas.
const (
	TransferStatusPending   = "PENDING"
	TransferStatusInTransit = "IN_TRANSIT"
	TransferStatusCompleted = "COMPLETED"
	TransferStatusCancelled = "CANCELLED"
)

// Transfer representa un traslado de stock entre dos bodegas.
// El stock se mueve únicamente al completar; crear el traslado solo valida disponibilidad.
type Transfer struct {
	ID              string
	Number          string // secuencial por año, ej: "TRF-2026-00042"
	FromWarehouseID string
	ToWarehouseID   string
	Status          string
	Notes           string
	RequestedBy     string
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []TransferItem
}

// Final indica si el traslado ya no admite mutaciones.
func (t *Transfer) Final() bool {
	return t.Status == TransferStatusCompleted || t.Status == TransferStatusCancelled
}

// TransferItem línea de un traslado (producto y cantidad a mover).
type TransferItem struct {
	ID         string
	TransferID string
	ProductID  string
	Quantity   decimal.Decimal
}
