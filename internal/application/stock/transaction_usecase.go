package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
	stockrules "github.com/ecocycle/ecocycle-ims/internal/domain/stock"
)

// TransactionUseCase crea y revierte transacciones de inventario.
// La aplicación del stock y la persistencia de la cabecera ocurren en la
// misma transacción de BD; si cualquier línea falla, nada queda aplicado.
type TransactionUseCase struct {
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	txRepo        repository.TransactionRepository
	runner        TxRunner
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	runner TxRunner,
) *TransactionUseCase {
	return &TransactionUseCase{
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		txRepo:        txRepo,
		runner:        runner,
	}
}

// Create registra una transacción y aplica su efecto sobre el inventario.
// Valida bodega y productos antes de abrir la transacción de BD; dentro de
// ella bloquea cada fila de inventario, aplica la regla del tipo y persiste
// cabecera y líneas (con la cantidad previa en los ADJUSTMENT).
func (uc *TransactionUseCase) Create(ctx context.Context, userID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidTransactionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	ids := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		// solo el ajuste absoluto admite cantidad cero
		if item.Quantity.IsZero() && in.Type != entity.TransactionTypeAdjustment {
			return nil, domain.ErrInvalidInput
		}
		ids = append(ids, item.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if products[id] == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		Number:      fmt.Sprintf("TRX-%d", now.UnixNano()),
		Type:        in.Type,
		WarehouseID: in.WarehouseID,
		Reference:   in.Reference,
		Notes:       in.Notes,
		Date:        now,
		CreatedBy:   userID,
		CreatedAt:   now,
	}

	err = uc.runner.Run(ctx, func(invRepo repository.InventoryRepository, txRepo repository.TransactionRepository) error {
		items := make([]entity.TransactionItem, 0, len(in.Items))
		for _, line := range in.Items {
			inv, err := invRepo.GetForUpdate(in.WarehouseID, line.ProductID)
			if err != nil {
				return err
			}
			if inv == nil {
				// solo los flujos de entrada materializan la fila; un ajuste
				// sobre un par bodega-producto sin fila no tiene qué fijar
				if in.Type == entity.TransactionTypeAdjustment {
					return domain.ErrNotFound
				}
				inv = entity.NewInventory(in.WarehouseID, line.ProductID)
			}
			previous, err := stockrules.Apply(inv, in.Type, line.Quantity)
			if err != nil {
				return err
			}
			inv.UpdatedAt = now
			if err := invRepo.Upsert(inv); err != nil {
				return err
			}
			items = append(items, entity.TransactionItem{
				ID:               uuid.New().String(),
				TransactionID:    tx.ID,
				ProductID:        line.ProductID,
				Quantity:         line.Quantity,
				UnitCost:         line.UnitCost,
				PreviousQuantity: previous,
			})
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		if err := txRepo.CreateItems(items); err != nil {
			return err
		}
		tx.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// GetByID obtiene una transacción con sus líneas.
func (uc *TransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return toTransactionResponse(tx), nil
}

// Search búsqueda paginada de transacciones.
func (uc *TransactionUseCase) Search(in dto.SearchRequest) ([]dto.TransactionResponse, dto.Pagination, error) {
	in.Normalize()
	list, total, err := uc.txRepo.Search(toQuery(in))
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, *toTransactionResponse(tx))
	}
	return items, dto.NewPagination(in.CurrentPage, in.Limit, total), nil
}

// Delete revierte exactamente el efecto de la transacción y la elimina.
// Las entradas se restan (falla si ese stock ya se comprometió), las salidas
// se suman y los ajustes restauran la cantidad previa guardada en la línea.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	return uc.runner.Run(ctx, func(invRepo repository.InventoryRepository, txRepo repository.TransactionRepository) error {
		tx, err := txRepo.GetByID(id)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		for _, line := range tx.Items {
			inv, err := invRepo.GetForUpdate(tx.WarehouseID, line.ProductID)
			if err != nil {
				return err
			}
			if inv == nil {
				inv = entity.NewInventory(tx.WarehouseID, line.ProductID)
			}
			if err := stockrules.Revert(inv, tx.Type, line.Quantity, line.PreviousQuantity); err != nil {
				return err
			}
			inv.UpdatedAt = now
			if err := invRepo.Upsert(inv); err != nil {
				return err
			}
		}
		return txRepo.Delete(id)
	})
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	items := make([]dto.TransactionItemResponse, 0, len(tx.Items))
	for _, it := range tx.Items {
		items = append(items, dto.TransactionItemResponse{
			ID:               it.ID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			UnitCost:         it.UnitCost,
			PreviousQuantity: it.PreviousQuantity,
		})
	}
	return &dto.TransactionResponse{
		ID:          tx.ID,
		Number:      tx.Number,
		Type:        tx.Type,
		WarehouseID: tx.WarehouseID,
		Reference:   tx.Reference,
		Notes:       tx.Notes,
		Date:        tx.Date,
		CreatedBy:   tx.CreatedBy,
		CreatedAt:   tx.CreatedAt,
		Items:       items,
	}
}
