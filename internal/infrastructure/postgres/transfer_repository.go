package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

var transferSearch = searchSpec{
	textCols: []string{"number", "notes"},
	filterCols: map[string]string{
		"status":            "status",
		"from_warehouse_id": "from_warehouse_id",
		"to_warehouse_id":   "to_warehouse_id",
	},
	sortCols: map[string]string{
		"number":     "number",
		"status":     "status",
		"created_at": "created_at",
	},
	defaultSort: "created_at DESC",
}

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste la cabecera de un traslado.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, number, from_warehouse_id, to_warehouse_id, status, notes,
			requested_by, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.Number, transfer.FromWarehouseID, transfer.ToWarehouseID,
		transfer.Status, transfer.Notes, transfer.RequestedBy, transfer.CompletedAt,
		transfer.CreatedAt, transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// CreateItems persiste las líneas de un traslado.
func (r *TransferRepo) CreateItems(items []entity.TransferItem) error {
	query := `
		INSERT INTO transfer_items (id, transfer_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), query,
			item.ID, item.TransferID, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert transfer item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un traslado con sus líneas.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	query := `
		SELECT id, number, from_warehouse_id, to_warehouse_id, status, notes,
			requested_by, completed_at, created_at, updated_at
		FROM transfers WHERE id = $1`
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Number, &t.FromWarehouseID, &t.ToWarehouseID, &t.Status, &t.Notes,
		&t.RequestedBy, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	items, err := r.itemsByTransfer(id)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

func (r *TransferRepo) itemsByTransfer(transferID string) ([]entity.TransferItem, error) {
	query := `
		SELECT id, transfer_id, product_id, quantity
		FROM transfer_items WHERE transfer_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer items: %w", err)
	}
	defer rows.Close()
	var items []entity.TransferItem
	for rows.Next() {
		var item entity.TransferItem
		if err := rows.Scan(&item.ID, &item.TransferID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateStatus actualiza estado, fecha de completado y updated_at del traslado.
func (r *TransferRepo) UpdateStatus(transfer *entity.Transfer) error {
	query := `
		UPDATE transfers SET status = $2, completed_at = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.Status, transfer.CompletedAt, transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}
	return nil
}

// NextSequence devuelve el siguiente consecutivo del año usando una fila
// contador con upsert atómico; no se repite aunque haya concurrencia.
func (r *TransferRepo) NextSequence(year int) (int, error) {
	query := `
		INSERT INTO transfer_sequences (year, last_value)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = transfer_sequences.last_value + 1
		RETURNING last_value`
	var seq int
	if err := r.q.QueryRow(context.Background(), query, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next transfer sequence: %w", err)
	}
	return seq, nil
}

// Search búsqueda paginada de cabeceras (sin líneas).
func (r *TransferRepo) Search(q repository.SearchQuery) ([]*entity.Transfer, int, error) {
	where, args := transferSearch.where(q)

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM transfers`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transfers: %w", err)
	}

	page, args := paginate(args, q.Limit, q.Offset)
	query := `
		SELECT id, number, from_warehouse_id, to_warehouse_id, status, notes,
			requested_by, completed_at, created_at, updated_at
		FROM transfers` + where + transferSearch.orderBy(q) + page
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.Number, &t.FromWarehouseID, &t.ToWarehouseID, &t.Status,
			&t.Notes, &t.RequestedBy, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}
