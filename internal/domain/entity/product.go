package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// CostPrice es el costo de adquisición; SellingPrice el precio de venta.
// ReorderPoint marca el umbral de reposición; ReorderQty la cantidad sugerida a pedir.
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Description  string
	CategoryID   string
	UnitMeasure  string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	ReorderPoint decimal.Decimal
	ReorderQty   decimal.Decimal
	Recyclable   bool            // apto para el flujo de reciclaje
	UnitWeightKg decimal.Decimal // peso unitario, base del cálculo de métricas de sostenibilidad
	Status       string          // active, discontinued
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
