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
	"github.com/ecocycle/ecocycle-ims/internal/domain/order"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
	stockrules "github.com/ecocycle/ecocycle-ims/internal/domain/stock"
)

// OrderUseCase crea pedidos y aplica sus transiciones de estado.
// Crear reserva el stock de cada línea; SHIPPED lo consume, CANCELLED libera
// la reserva y RETURNED reingresa lo despachado. Cada efecto corre en una
// transacción de BD con las filas de inventario bloqueadas.
type OrderUseCase struct {
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	orderRepo     repository.OrderRepository
	runner        TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	runner TxRunner,
) *OrderUseCase {
	return &OrderUseCase{
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		runner:        runner,
	}
}

// Create registra un pedido en NEW reservando el stock de cada línea.
// El precio unitario se toma del precio de venta vigente del producto.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
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

	now := time.Now()
	ord := &entity.Order{
		ID:            uuid.New().String(),
		Number:        fmt.Sprintf("ORD-%d", now.UnixNano()),
		WarehouseID:   in.WarehouseID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Status:        entity.OrderStatusNew,
		TotalAmount:   decimal.Zero,
		Notes:         in.Notes,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		price := products[line.ProductID].SellingPrice
		ord.TotalAmount = ord.TotalAmount.Add(price.Mul(line.Quantity))
		items = append(items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   ord.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: price,
		})
	}

	err = uc.runner.RunOrder(ctx, func(invRepo repository.InventoryRepository, ordRepo repository.OrderRepository) error {
		for _, line := range items {
			inv, err := invRepo.GetForUpdate(in.WarehouseID, line.ProductID)
			if err != nil {
				return err
			}
			if inv == nil {
				return domain.ErrInsufficientStock
			}
			if err := stockrules.Reserve(inv, line.Quantity); err != nil {
				return err
			}
			inv.UpdatedAt = now
			if err := invRepo.Upsert(inv); err != nil {
				return err
			}
		}
		if err := ordRepo.Create(ord); err != nil {
			return err
		}
		return ordRepo.CreateItems(items)
	})
	if err != nil {
		return nil, err
	}
	ord.Items = items
	return toOrderResponse(ord), nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	ord, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, nil
	}
	return toOrderResponse(ord), nil
}

// Search búsqueda paginada de pedidos.
func (uc *OrderUseCase) Search(in dto.SearchRequest) ([]dto.OrderResponse, dto.Pagination, error) {
	in.Normalize()
	list, total, err := uc.orderRepo.Search(toQuery(in))
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, dto.NewPagination(in.CurrentPage, in.Limit, total), nil
}

// ChangeStatus aplica una transición del ciclo de vida del pedido.
// Valida la transición contra el grafo de estados y ejecuta el efecto de
// inventario que corresponda al estado destino.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, id, next string) (*dto.OrderResponse, error) {
	if !order.ValidStatus(next) {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Order
	err := uc.runner.RunOrder(ctx, func(invRepo repository.InventoryRepository, ordRepo repository.OrderRepository) error {
		ord, err := ordRepo.GetByID(id)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		if err := order.Guard(ord.Status, next); err != nil {
			return err
		}
		now := time.Now()
		switch next {
		case entity.OrderStatusShipped:
			// el stock reservado sale físicamente de la bodega
			for _, line := range ord.Items {
				inv, err := invRepo.GetForUpdate(ord.WarehouseID, line.ProductID)
				if err != nil {
					return err
				}
				if inv == nil {
					return domain.ErrConflict
				}
				if err := stockrules.Consume(inv, line.Quantity); err != nil {
					return err
				}
				inv.UpdatedAt = now
				if err := invRepo.Upsert(inv); err != nil {
					return err
				}
			}
		case entity.OrderStatusCancelled:
			// liberar la reserva; el stock físico nunca se movió
			for _, line := range ord.Items {
				inv, err := invRepo.GetForUpdate(ord.WarehouseID, line.ProductID)
				if err != nil {
					return err
				}
				if inv == nil {
					return domain.ErrConflict
				}
				if err := stockrules.Release(inv, line.Quantity); err != nil {
					return err
				}
				inv.UpdatedAt = now
				if err := invRepo.Upsert(inv); err != nil {
					return err
				}
			}
		case entity.OrderStatusReturned:
			// reingreso de lo despachado
			for _, line := range ord.Items {
				inv, err := invRepo.GetForUpdate(ord.WarehouseID, line.ProductID)
				if err != nil {
					return err
				}
				if inv == nil {
					// el reingreso es un flujo de entrada; puede crear la fila
					inv = entity.NewInventory(ord.WarehouseID, line.ProductID)
				}
				if err := stockrules.Restock(inv, line.Quantity); err != nil {
					return err
				}
				inv.UpdatedAt = now
				if err := invRepo.Upsert(inv); err != nil {
					return err
				}
			}
		}
		ord.Status = next
		ord.UpdatedAt = now
		if err := ordRepo.UpdateStatus(ord); err != nil {
			return err
		}
		out = ord
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(out), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		Number:        o.Number,
		WarehouseID:   o.WarehouseID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status,
		TotalAmount:   o.TotalAmount,
		Notes:         o.Notes,
		CreatedBy:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Items:         items,
	}
}
