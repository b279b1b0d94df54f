package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SustainabilityMetric resume el desempeño ambiental de una bodega en un mes.
// Se calcula a partir de las transacciones WASTE y RECYCLING y del peso unitario
// de los productos involucrados.
type SustainabilityMetric struct {
	WarehouseID    string
	Period         string          // "YYYY-MM"
	WastedQty      decimal.Decimal // unidades dadas de baja como merma
	RecycledQty    decimal.Decimal // unidades enviadas a reciclaje
	RecyclingRate  decimal.Decimal // RecycledQty / (WastedQty + RecycledQty), 0 si no hay bajas
	DivertedWeight decimal.Decimal // kg desviados del relleno sanitario (reciclado * peso unitario)
	ComputedAt     time.Time
}
