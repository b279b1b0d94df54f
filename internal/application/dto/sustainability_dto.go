package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SustainabilityMetricDTO métrica ambiental mensual de una bodega.
type SustainabilityMetricDTO struct {
	WarehouseID    string          `json:"warehouse_id"`
	Period         string          `json:"period"` // "YYYY-MM"
	WastedQty      decimal.Decimal `json:"wasted_qty"`
	RecycledQty    decimal.Decimal `json:"recycled_qty"`
	RecyclingRate  decimal.Decimal `json:"recycling_rate"`  // 0..1
	DivertedWeight decimal.Decimal `json:"diverted_weight"` // kg
	ComputedAt     time.Time       `json:"computed_at"`
}
