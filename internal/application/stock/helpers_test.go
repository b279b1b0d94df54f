package stock_test

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de stock. Implementan los puertos
// completos; los métodos que un test no ejercita devuelven valores vacíos.

type fakeInventoryRepo struct {
	rows map[string]*entity.Inventory // "warehouseID/productID"
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{rows: map[string]*entity.Inventory{}}
}

func invKey(warehouseID, productID string) string {
	return warehouseID + "/" + productID
}

func (r *fakeInventoryRepo) seed(warehouseID, productID string, quantity, reserved int64) {
	q := decimal.NewFromInt(quantity)
	res := decimal.NewFromInt(reserved)
	r.rows[invKey(warehouseID, productID)] = &entity.Inventory{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Quantity:    q,
		Reserved:    res,
		Available:   q.Sub(res),
	}
}

func (r *fakeInventoryRepo) row(warehouseID, productID string) *entity.Inventory {
	if inv, ok := r.rows[invKey(warehouseID, productID)]; ok {
		return inv
	}
	return entity.NewInventory(warehouseID, productID)
}

func (r *fakeInventoryRepo) Get(warehouseID, productID string) (*entity.Inventory, error) {
	copy := *r.row(warehouseID, productID)
	return &copy, nil
}

// GetForUpdate imita al adaptador de PostgreSQL: nil si la fila no existe.
func (r *fakeInventoryRepo) GetForUpdate(warehouseID, productID string) (*entity.Inventory, error) {
	inv, ok := r.rows[invKey(warehouseID, productID)]
	if !ok {
		return nil, nil
	}
	copy := *inv
	return &copy, nil
}

func (r *fakeInventoryRepo) Upsert(inv *entity.Inventory) error {
	copy := *inv
	r.rows[invKey(inv.WarehouseID, inv.ProductID)] = &copy
	return nil
}

func (r *fakeInventoryRepo) Search(q repository.SearchQuery) ([]*entity.Inventory, int, error) {
	return nil, 0, nil
}

func (r *fakeInventoryRepo) ListBelowReorderPoint(ctx context.Context, warehouseID string) ([]repository.LowStockRow, error) {
	return nil, nil
}

type fakeTransactionRepo struct {
	byID    map[string]*entity.Transaction
	deleted []string
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byID: map[string]*entity.Transaction{}}
}

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	r.byID[tx.ID] = tx
	return nil
}

func (r *fakeTransactionRepo) CreateItems(items []entity.TransactionItem) error {
	if len(items) == 0 {
		return nil
	}
	if tx, ok := r.byID[items[0].TransactionID]; ok {
		tx.Items = items
	}
	return nil
}

func (r *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	return r.byID[id], nil
}

func (r *fakeTransactionRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeTransactionRepo) Search(q repository.SearchQuery) ([]*entity.Transaction, int, error) {
	return nil, 0, nil
}

type fakeTransferRepo struct {
	byID map[string]*entity.Transfer
	seq  int
}

func newFakeTransferRepo() *fakeTransferRepo {
	return &fakeTransferRepo{byID: map[string]*entity.Transfer{}}
}

func (r *fakeTransferRepo) Create(transfer *entity.Transfer) error {
	r.byID[transfer.ID] = transfer
	return nil
}

func (r *fakeTransferRepo) CreateItems(items []entity.TransferItem) error {
	if len(items) == 0 {
		return nil
	}
	if t, ok := r.byID[items[0].TransferID]; ok {
		t.Items = items
	}
	return nil
}

func (r *fakeTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	return r.byID[id], nil
}

func (r *fakeTransferRepo) UpdateStatus(transfer *entity.Transfer) error {
	if _, ok := r.byID[transfer.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[transfer.ID] = transfer
	return nil
}

func (r *fakeTransferRepo) NextSequence(year int) (int, error) {
	r.seq++
	return r.seq, nil
}

func (r *fakeTransferRepo) Search(q repository.SearchQuery) ([]*entity.Transfer, int, error) {
	return nil, 0, nil
}

type fakeOrderRepo struct {
	byID map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	r.byID[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) CreateItems(items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if o, ok := r.byID[items[0].OrderID]; ok {
		o.Items = items
	}
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.byID[id], nil
}

func (r *fakeOrderRepo) UpdateStatus(order *entity.Order) error {
	if _, ok := r.byID[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) Search(q repository.SearchQuery) ([]*entity.Order, int, error) {
	return nil, 0, nil
}

type fakeWarehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{byID: map[string]*entity.Warehouse{}}
	for i, id := range ids {
		r.byID[id] = &entity.Warehouse{ID: id, Code: fmt.Sprintf("WH-%02d", i+1), Name: "Bodega " + id}
	}
	return r
}

func (r *fakeWarehouseRepo) Create(warehouse *entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.byID[id], nil
}
func (r *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) Update(warehouse *entity.Warehouse) error         { return nil }
func (r *fakeWarehouseRepo) Delete(id string) error                           { return nil }
func (r *fakeWarehouseRepo) Search(q repository.SearchQuery) ([]*entity.Warehouse, int, error) {
	return nil, 0, nil
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: map[string]*entity.Product{}}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func product(id string, sellingPrice int64) *entity.Product {
	return &entity.Product{
		ID:           id,
		SKU:          "SKU-" + id,
		Name:         "Producto " + id,
		SellingPrice: decimal.NewFromInt(sellingPrice),
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error               { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)   { return r.byID[id], nil }
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetByIDs(ids []string) (map[string]*entity.Product, error) {
	out := map[string]*entity.Product{}
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(id string) error         { return nil }
func (r *fakeProductRepo) Search(q repository.SearchQuery) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

// fakeRunner ejecuta el callback directamente sobre los fakes; sin tx real.
type fakeRunner struct {
	inv *fakeInventoryRepo
	tx  *fakeTransactionRepo
	trf *fakeTransferRepo
	ord *fakeOrderRepo
}

func (r *fakeRunner) Run(ctx context.Context, fn func(repository.InventoryRepository, repository.TransactionRepository) error) error {
	return fn(r.inv, r.tx)
}

func (r *fakeRunner) RunTransfer(ctx context.Context, fn func(repository.InventoryRepository, repository.TransferRepository) error) error {
	return fn(r.inv, r.trf)
}

func (r *fakeRunner) RunOrder(ctx context.Context, fn func(repository.InventoryRepository, repository.OrderRepository) error) error {
	return fn(r.inv, r.ord)
}
