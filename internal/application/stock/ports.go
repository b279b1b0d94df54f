// Package stock contiene los casos de uso que mueven inventario:
// transacciones (con reversión), traslados entre bodegas y transiciones de
// pedidos. Toda mutación corre dentro de una transacción de BD con la fila
// de inventario bloqueada (SELECT FOR UPDATE).
package stock

import (
	"context"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de inventario.
type TxRunner interface {
	// Run para transacciones de inventario (crear / revertir).
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		txRepo repository.TransactionRepository,
	) error) error

	// RunTransfer para el ciclo de vida de traslados.
	RunTransfer(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		trfRepo repository.TransferRepository,
	) error) error

	// RunOrder para creación y transiciones de pedidos.
	RunOrder(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		ordRepo repository.OrderRepository,
	) error) error
}

func toQuery(in dto.SearchRequest) repository.SearchQuery {
	return repository.SearchQuery{
		Term:    in.Search,
		Filters: in.Filters,
		SortBy:  in.Sort.By,
		SortDir: in.Sort.Dir,
		Limit:   in.Limit,
		Offset:  in.Offset(),
	}
}
