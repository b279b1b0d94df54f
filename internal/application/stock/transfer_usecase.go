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

// ManifestGenerator genera el acta de traslado en PDF.
type ManifestGenerator interface {
	TransferManifest(transfer *entity.Transfer, from, to *entity.Warehouse, products map[string]*entity.Product) ([]byte, error)
}

// TransferUseCase maneja el ciclo de vida de traslados entre bodegas:
// PENDING -> IN_TRANSIT -> COMPLETED, con cancelación desde los dos primeros.
// El stock se mueve una sola vez, al completar, de forma atómica.
type TransferUseCase struct {
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	transferRepo  repository.TransferRepository
	runner        TxRunner
	manifest      ManifestGenerator
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	transferRepo repository.TransferRepository,
	runner TxRunner,
	manifest ManifestGenerator,
) *TransferUseCase {
	return &TransferUseCase{
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		transferRepo:  transferRepo,
		runner:        runner,
		manifest:      manifest,
	}
}

// Create registra un traslado en PENDING. Valida que ambas bodegas existan y
// sean distintas, que los productos existan y que la bodega origen tenga
// disponible cada cantidad; no mueve stock todavía.
func (uc *TransferUseCase) Create(ctx context.Context, userID string, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	for _, wid := range []string{in.FromWarehouseID, in.ToWarehouseID} {
		warehouse, err := uc.warehouseRepo.GetByID(wid)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, domain.ErrNotFound
		}
	}
	ids := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if !item.Quantity.GreaterThan(decimal.Zero) {
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
	for _, item := range in.Items {
		inv, err := uc.inventoryRepo.Get(in.FromWarehouseID, item.ProductID)
		if err != nil {
			return nil, err
		}
		if inv.Available.LessThan(item.Quantity) {
			return nil, domain.ErrInsufficientStock
		}
	}

	now := time.Now()
	seq, err := uc.transferRepo.NextSequence(now.Year())
	if err != nil {
		return nil, err
	}
	transfer := &entity.Transfer{
		ID:              uuid.New().String(),
		Number:          fmt.Sprintf("TRF-%d-%05d", now.Year(), seq),
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Status:          entity.TransferStatusPending,
		Notes:           in.Notes,
		RequestedBy:     userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	items := make([]entity.TransferItem, 0, len(in.Items))
	for _, line := range in.Items {
		items = append(items, entity.TransferItem{
			ID:         uuid.New().String(),
			TransferID: transfer.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
		})
	}
	if err := uc.transferRepo.Create(transfer); err != nil {
		return nil, err
	}
	if err := uc.transferRepo.CreateItems(items); err != nil {
		return nil, err
	}
	transfer.Items = items
	return toTransferResponse(transfer), nil
}

// GetByID obtiene un traslado con sus líneas.
func (uc *TransferUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, nil
	}
	return toTransferResponse(transfer), nil
}

// Search búsqueda paginada de traslados.
func (uc *TransferUseCase) Search(in dto.SearchRequest) ([]dto.TransferResponse, dto.Pagination, error) {
	in.Normalize()
	list, total, err := uc.transferRepo.Search(toQuery(in))
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return items, dto.NewPagination(in.CurrentPage, in.Limit, total), nil
}

// Dispatch marca el traslado como IN_TRANSIT. Solo desde PENDING.
func (uc *TransferUseCase) Dispatch(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	if transfer.Final() {
		return nil, domain.ErrTransferImmutable
	}
	if transfer.Status != entity.TransferStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	transfer.Status = entity.TransferStatusInTransit
	transfer.UpdatedAt = time.Now()
	if err := uc.transferRepo.UpdateStatus(transfer); err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// Complete ejecuta el movimiento de stock: descuenta cada línea de la bodega
// origen (falla con stock insuficiente si el disponible bajó desde la
// creación) y la acredita en la destino, creando la fila si no existe.
// Acepta traslados en PENDING o IN_TRANSIT; el paso por dispatch es opcional.
// Todo dentro de una transacción de BD; el traslado queda COMPLETED e inmutable.
func (uc *TransferUseCase) Complete(ctx context.Context, id string) (*dto.TransferResponse, error) {
	var out *entity.Transfer
	err := uc.runner.RunTransfer(ctx, func(invRepo repository.InventoryRepository, trfRepo repository.TransferRepository) error {
		transfer, err := trfRepo.GetByID(id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if transfer.Final() {
			return domain.ErrTransferImmutable
		}
		if transfer.Status != entity.TransferStatusInTransit && transfer.Status != entity.TransferStatusPending {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		for _, line := range transfer.Items {
			from, err := invRepo.GetForUpdate(transfer.FromWarehouseID, line.ProductID)
			if err != nil {
				return err
			}
			if from == nil || from.Available.LessThan(line.Quantity) {
				return domain.ErrInsufficientStock
			}
			from.Quantity = from.Quantity.Sub(line.Quantity)
			from.Available = from.Available.Sub(line.Quantity)
			from.UpdatedAt = now
			if err := invRepo.Upsert(from); err != nil {
				return err
			}

			to, err := invRepo.GetForUpdate(transfer.ToWarehouseID, line.ProductID)
			if err != nil {
				return err
			}
			if to == nil {
				to = entity.NewInventory(transfer.ToWarehouseID, line.ProductID)
			}
			if err := stockrules.Restock(to, line.Quantity); err != nil {
				return err
			}
			to.UpdatedAt = now
			if err := invRepo.Upsert(to); err != nil {
				return err
			}
		}
		transfer.Status = entity.TransferStatusCompleted
		transfer.CompletedAt = &now
		transfer.UpdatedAt = now
		if err := trfRepo.UpdateStatus(transfer); err != nil {
			return err
		}
		out = transfer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransferResponse(out), nil
}

// Cancel cancela un traslado que aún no ha sido completado. Como el stock no
// se movió, no hay nada que revertir.
func (uc *TransferUseCase) Cancel(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	if transfer.Final() {
		return nil, domain.ErrTransferImmutable
	}
	transfer.Status = entity.TransferStatusCancelled
	transfer.UpdatedAt = time.Now()
	if err := uc.transferRepo.UpdateStatus(transfer); err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// Manifest genera el acta de traslado en PDF con bodegas y productos resueltos.
func (uc *TransferUseCase) Manifest(id string) ([]byte, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	from, err := uc.warehouseRepo.GetByID(transfer.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	to, err := uc.warehouseRepo.GetByID(transfer.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(transfer.Items))
	for _, line := range transfer.Items {
		ids = append(ids, line.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	return uc.manifest.TransferManifest(transfer, from, to, products)
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	items := make([]dto.TransferItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.TransferItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return &dto.TransferResponse{
		ID:              t.ID,
		Number:          t.Number,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Status:          t.Status,
		Notes:           t.Notes,
		RequestedBy:     t.RequestedBy,
		CompletedAt:     t.CompletedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		Items:           items,
	}
}
