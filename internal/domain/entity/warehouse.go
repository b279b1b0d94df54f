package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa una bodega o centro de acopio donde se almacena inventario.
type Warehouse struct {
	ID        string
	Code      string // código corto único, ej: "BOG-01"
	Name      string
	Address   string
	City      string
	Capacity  decimal.Decimal // capacidad nominal en unidades
	ManagerID *string         // usuario responsable (opcional)
	Status    string          // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
