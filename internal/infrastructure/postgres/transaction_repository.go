package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

var transactionSearch = searchSpec{
	textCols: []string{"number", "reference", "notes"},
	filterCols: map[string]string{
		"type":         "type",
		"warehouse_id": "warehouse_id",
		"created_by":   "created_by",
	},
	sortCols: map[string]string{
		"number":     "number",
		"date":       "date",
		"created_at": "created_at",
	},
	defaultSort: "date DESC",
}

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de transacciones. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste la cabecera de una transacción.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, number, type, warehouse_id, reference, notes, date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Number, tx.Type, tx.WarehouseID, tx.Reference, tx.Notes,
		tx.Date, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// CreateItems persiste las líneas de una transacción.
func (r *TransactionRepo) CreateItems(items []entity.TransactionItem) error {
	query := `
		INSERT INTO transaction_items (id, transaction_id, product_id, quantity, unit_cost, previous_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), query,
			item.ID, item.TransactionID, item.ProductID, item.Quantity, item.UnitCost, item.PreviousQuantity,
		)
		if err != nil {
			return fmt.Errorf("insert transaction item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una transacción con sus líneas.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, number, type, warehouse_id, reference, notes, date, created_by, created_at
		FROM transactions WHERE id = $1`
	var tx entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&tx.ID, &tx.Number, &tx.Type, &tx.WarehouseID, &tx.Reference, &tx.Notes,
		&tx.Date, &tx.CreatedBy, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	items, err := r.itemsByTransaction(id)
	if err != nil {
		return nil, err
	}
	tx.Items = items
	return &tx, nil
}

func (r *TransactionRepo) itemsByTransaction(transactionID string) ([]entity.TransactionItem, error) {
	query := `
		SELECT id, transaction_id, product_id, quantity, unit_cost, previous_quantity
		FROM transaction_items WHERE transaction_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	var items []entity.TransactionItem
	for rows.Next() {
		var item entity.TransactionItem
		if err := rows.Scan(&item.ID, &item.TransactionID, &item.ProductID, &item.Quantity,
			&item.UnitCost, &item.PreviousQuantity); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Delete elimina una transacción y sus líneas (el caso de uso ya revirtió el stock).
func (r *TransactionRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM transaction_items WHERE transaction_id = $1`, id); err != nil {
		return fmt.Errorf("delete transaction items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// Search búsqueda paginada de cabeceras (sin líneas).
func (r *TransactionRepo) Search(q repository.SearchQuery) ([]*entity.Transaction, int, error) {
	where, args := transactionSearch.where(q)

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	page, args := paginate(args, q.Limit, q.Offset)
	query := `
		SELECT id, number, type, warehouse_id, reference, notes, date, created_by, created_at
		FROM transactions` + where + transactionSearch.orderBy(q) + page
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var tx entity.Transaction
		if err := rows.Scan(&tx.ID, &tx.Number, &tx.Type, &tx.WarehouseID, &tx.Reference,
			&tx.Notes, &tx.Date, &tx.CreatedBy, &tx.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, total, rows.Err()
}
