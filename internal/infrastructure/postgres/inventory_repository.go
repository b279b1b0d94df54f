package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

var inventorySearch = searchSpec{
	filterCols: map[string]string{
		"warehouse_id": "warehouse_id",
		"product_id":   "product_id",
	},
	sortCols: map[string]string{
		"quantity":   "quantity",
		"available":  "available",
		"updated_at": "updated_at",
	},
	defaultSort: "updated_at DESC",
}

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene la fila de inventario de un producto en una bodega.
// Si no existe devuelve una fila en cero (el par aún no tiene stock).
func (r *InventoryRepo) Get(warehouseID, productID string) (*entity.Inventory, error) {
	query := `
		SELECT warehouse_id, product_id, quantity, reserved, available, updated_at
		FROM inventory WHERE warehouse_id = $1 AND product_id = $2`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, warehouseID, productID).Scan(
		&inv.WarehouseID, &inv.ProductID, &inv.Quantity, &inv.Reserved, &inv.Available, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.NewInventory(warehouseID, productID), nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE). Devuelve nil
// si la fila no existe; el caso de uso decide si puede crearla. Usar solo
// dentro de una tx.
func (r *InventoryRepo) GetForUpdate(warehouseID, productID string) (*entity.Inventory, error) {
	query := `
		SELECT warehouse_id, product_id, quantity, reserved, available, updated_at
		FROM inventory WHERE warehouse_id = $1 AND product_id = $2
		FOR UPDATE`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, warehouseID, productID).Scan(
		&inv.WarehouseID, &inv.ProductID, &inv.Quantity, &inv.Reserved, &inv.Available, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// Upsert inserta o actualiza las tres cantidades de la fila (bodega, producto).
func (r *InventoryRepo) Upsert(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (warehouse_id, product_id, quantity, reserved, available, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (warehouse_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, reserved = EXCLUDED.reserved,
			available = EXCLUDED.available, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		inv.WarehouseID, inv.ProductID, inv.Quantity, inv.Reserved, inv.Available,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// Search búsqueda paginada de filas de inventario (por bodega o producto).
func (r *InventoryRepo) Search(q repository.SearchQuery) ([]*entity.Inventory, int, error) {
	where, args := inventorySearch.where(q)

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM inventory`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}

	page, args := paginate(args, q.Limit, q.Offset)
	query := `
		SELECT warehouse_id, product_id, quantity, reserved, available, updated_at
		FROM inventory` + where + inventorySearch.orderBy(q) + page
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.WarehouseID, &inv.ProductID, &inv.Quantity, &inv.Reserved,
			&inv.Available, &inv.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, total, rows.Err()
}

// ListBelowReorderPoint lista los productos cuyo disponible está en o bajo el
// punto de reorden. Si warehouseID no es vacío, restringe a esa bodega.
func (r *InventoryRepo) ListBelowReorderPoint(ctx context.Context, warehouseID string) ([]repository.LowStockRow, error) {
	query := `
		SELECT i.warehouse_id, w.name, i.product_id, p.sku, p.name,
			i.available, p.reorder_point, p.reorder_qty
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE i.available <= p.reorder_point
			AND p.status = 'active'
			AND ($1 = '' OR i.warehouse_id = $1)
		ORDER BY w.name, p.sku`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.WarehouseID, &row.WarehouseName, &row.ProductID, &row.SKU,
			&row.ProductName, &row.Available, &row.ReorderPoint, &row.ReorderQty); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
