package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y sostenibilidad.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDashboardCounts devuelve los conteos del resumen operativo en una sola consulta.
func (r *AnalyticsRepo) GetDashboardCounts(ctx context.Context) (repository.DashboardCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM warehouses WHERE status = 'active')                       AS warehouses,
	    (SELECT COUNT(*) FROM products   WHERE status = 'active')                       AS products,
	    (SELECT COUNT(*)
	       FROM inventory i JOIN products p ON p.id = i.product_id
	      WHERE i.available <= p.reorder_point AND p.status = 'active')                 AS low_stock_items,
	    (SELECT COUNT(*) FROM transfers WHERE status IN ('PENDING', 'IN_TRANSIT'))      AS pending_transfers,
	    (SELECT COUNT(*) FROM orders WHERE status NOT IN ('DELIVERED', 'CANCELLED', 'RETURNED')) AS open_orders`

	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query).Scan(
		&c.Warehouses, &c.Products, &c.LowStockItems, &c.PendingTransfers, &c.OpenOrders,
	)
	if err != nil {
		return repository.DashboardCounts{}, fmt.Errorf("analytics.GetDashboardCounts: %w", err)
	}
	return c, nil
}

// GetMovementTotals suma las cantidades movidas en el rango, por dirección.
// Usa COALESCE para devolver cero si no hay movimientos en el período.
func (r *AnalyticsRepo) GetMovementTotals(ctx context.Context, from, to time.Time) (repository.MovementTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(ti.quantity) FILTER (WHERE t.type IN ('STOCK_IN', 'RETURN')),            0) AS inbound,
	    COALESCE(SUM(ti.quantity) FILTER (WHERE t.type IN ('STOCK_OUT', 'WASTE', 'RECYCLING')), 0) AS outbound,
	    COALESCE(SUM(ti.quantity) FILTER (WHERE t.type = 'WASTE'),                             0) AS waste,
	    COALESCE(SUM(ti.quantity) FILTER (WHERE t.type = 'RECYCLING'),                         0) AS recycled
	FROM transactions t
	JOIN transaction_items ti ON ti.transaction_id = t.id
	WHERE t.date BETWEEN $1 AND $2`

	var m repository.MovementTotals
	err := r.pool.QueryRow(ctx, query, from, to).Scan(
		&m.InboundQty, &m.OutboundQty, &m.WasteQty, &m.RecycledQty,
	)
	if err != nil {
		return repository.MovementTotals{}, fmt.Errorf("analytics.GetMovementTotals: %w", err)
	}
	return m, nil
}

// GetDisposals devuelve las líneas WASTE/RECYCLING de una bodega en el rango,
// con el peso unitario del producto para calcular kg desviados.
func (r *AnalyticsRepo) GetDisposals(ctx context.Context, warehouseID string, from, to time.Time) ([]repository.DisposalRow, error) {
	const query = `
	SELECT ti.product_id, t.type, ti.quantity, p.unit_weight_kg, p.recyclable
	FROM transactions t
	JOIN transaction_items ti ON ti.transaction_id = t.id
	JOIN products p           ON p.id = ti.product_id
	WHERE t.warehouse_id = $1
	  AND t.type IN ($2, $3)
	  AND t.date BETWEEN $4 AND $5
	ORDER BY t.date`

	rows, err := r.pool.Query(ctx, query, warehouseID,
		entity.TransactionTypeWaste, entity.TransactionTypeRecycling, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDisposals: %w", err)
	}
	defer rows.Close()

	var results []repository.DisposalRow
	for rows.Next() {
		var row repository.DisposalRow
		if err := rows.Scan(&row.ProductID, &row.TxType, &row.Quantity, &row.UnitWeightKg, &row.Recyclable); err != nil {
			return nil, fmt.Errorf("analytics.GetDisposals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
