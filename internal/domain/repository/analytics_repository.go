package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DisposalRow resultado crudo de la consulta de bajas WASTE/RECYCLING por producto
// (la produce la DB; el caso de uso la convierte en métrica).
type DisposalRow struct {
	ProductID    string
	TxType       string
	Quantity     decimal.Decimal
	UnitWeightKg decimal.Decimal
	Recyclable   bool
}

// DashboardCounts conteos agregados para el resumen operativo.
type DashboardCounts struct {
	Warehouses       int
	Products         int
	LowStockItems    int
	PendingTransfers int
	OpenOrders       int
}

// MovementTotals totales de unidades movidas en un período, por dirección.
type MovementTotals struct {
	InboundQty  decimal.Decimal
	OutboundQty decimal.Decimal
	WasteQty    decimal.Decimal
	RecycledQty decimal.Decimal
}

// AnalyticsRepository define las consultas de solo lectura para el dashboard
// y las métricas de sostenibilidad. Las implementaciones no modifican datos.
type AnalyticsRepository interface {
	// GetDashboardCounts devuelve los conteos del resumen operativo.
	GetDashboardCounts(ctx context.Context) (DashboardCounts, error)

	// GetMovementTotals suma las cantidades de transacciones en el rango dado.
	// Usa COALESCE para devolver cero si no hay movimientos en el período.
	GetMovementTotals(ctx context.Context, from, to time.Time) (MovementTotals, error)

	// GetDisposals devuelve las líneas WASTE/RECYCLING de una bodega en el rango,
	// con el peso unitario del producto para calcular kg desviados.
	GetDisposals(ctx context.Context, warehouseID string, from, to time.Time) ([]DisposalRow, error)
}
