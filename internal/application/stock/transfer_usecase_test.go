package stock_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	appstock "github.com/ecocycle/ecocycle-ims/internal/application/stock"
	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
)

type trfFixture struct {
	uc  *appstock.TransferUseCase
	inv *fakeInventoryRepo
	trf *fakeTransferRepo
}

func newTrfFixture() *trfFixture {
	inv := newFakeInventoryRepo()
	trf := newFakeTransferRepo()
	runner := &fakeRunner{inv: inv, trf: trf}
	warehouses := newFakeWarehouseRepo("wh-1", "wh-2")
	products := newFakeProductRepo(product("prod-1", 100))
	return &trfFixture{
		uc:  appstock.NewTransferUseCase(warehouses, products, inv, trf, runner, nil),
		inv: inv,
		trf: trf,
	}
}

func (f *trfFixture) create(t *testing.T, qty int64) *dto.TransferResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransferRequest{
		FromWarehouseID: "wh-1",
		ToWarehouseID:   "wh-2",
		Items:           []dto.TransferItemRequest{{ProductID: "prod-1", Quantity: d(qty)}},
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear valida disponibilidad pero no mueve stock; el número es secuencial por año.
func TestTransferCreate_QuedaPendienteSinMoverStock(t *testing.T) {
	f := newTrfFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)

	out := f.create(t, 6)
	assert.Equal(t, entity.TransferStatusPending, out.Status)
	assert.Equal(t, fmt.Sprintf("TRF-%d-00001", time.Now().Year()), out.Number)

	from, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, from.Quantity.Equal(d(10)), "crear no mueve stock")
	to, _ := f.inv.Get("wh-2", "prod-1")
	assert.True(t, to.Quantity.IsZero())
}

// El consecutivo avanza con cada traslado del año.
func TestTransferCreate_ConsecutivoPorAnio(t *testing.T) {
	f := newTrfFixture()
	f.inv.seed("wh-1", "prod-1", 100, 0)
	first := f.create(t, 1)
	second := f.create(t, 1)
	assert.NotEqual(t, first.Number, second.Number)
	assert.Equal(t, fmt.Sprintf("TRF-%d-00002", time.Now().Year()), second.Number)
}

// Origen y destino no pueden ser la misma bodega.
func TestTransferCreate_MismaBodega(t *testing.T) {
	f := newTrfFixture()
	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransferRequest{
		FromWarehouseID: "wh-1",
		ToWarehouseID:   "wh-1",
		Items:           []dto.TransferItemRequest{{ProductID: "prod-1", Quantity: d(1)}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin disponible suficiente en el origen, el traslado no se crea.
func TestTransferCreate_SinDisponible(t *testing.T) {
	f := newTrfFixture()
	f.inv.seed("wh-1", "prod-1", 10, 8) // available = 2
	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransferRequest{
		FromWarehouseID: "wh-1",
		ToWarehouseID:   "wh-2",
		Items:           []dto.TransferItemRequest{{ProductID: "prod-1", Quantity: d(5)}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, f.trf.byID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

// PENDING -> IN_TRANSIT -> COMPLETED mueve el stock una sola vez, al completar.
func TestTransferLifecycle_CompletarMueveStock(t *testing.T) {
	f := newTrfFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t, 6)

	dispatched, err := f.uc.Dispatch(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusInTransit, dispatched.Status)

	completed, err := f.uc.Complete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	from, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, from.Quantity.Equal(d(4)))
	assert.True(t, from.Available.Equal(d(4)))
	to, _ := f.inv.Get("wh-2", "prod-1")
	assert.True(t, to.Quantity.Equal(d(6)), "el destino recibe la cantidad; la fila se crea si no existía")
	assert.True(t, to.Available.Equal(d(6)))
}

// Completar directamente desde PENDING también mueve el stock: el paso por
// dispatch es opcional.
func TestTransferComplete_DesdePendiente(t *testing.T) {
	f := newTrfFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t, 2)

	completed, err := f.uc.Complete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusCompleted, completed.Status)

	from, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, from.Quantity.Equal(d(8)))
	to, _ := f.inv.Get("wh-2", "prod-1")
	assert.True(t, to.Quantity.Equal(d(2)))
}

// Si el disponible bajó desde la creación, completar falla y nada se mueve.
func TestTransferComplete_DisponibleBajoDespuesDeCrear(t *testing.T) {
	f := newTrfFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t, 6)
	_, err := f.uc.Dispatch(out.ID)
	require.NoError(t, err)

	// otra operación consumió el stock mientras el traslado estaba en tránsito
	f.inv.seed("wh-1", "prod-1", 3, 0)

	_, err = f.uc.Complete(context.Background(), out.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	from, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, from.Quantity.Equal(d(3)))
}

// Cancelar desde PENDING o IN_TRANSIT no toca inventario.
func TestTransferCancel_NoMueveStock(t *testing.T) {
	f := newTrfFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t, 6)

	cancelled, err := f.uc.Cancel(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusCancelled, cancelled.Status)
	from, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, from.Quantity.Equal(d(10)))
}

// Los estados finales son inmutables.
func TestTransferFinal_EsInmutable(t *testing.T) {
	f := newTrfFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t, 2)
	_, err := f.uc.Cancel(out.ID)
	require.NoError(t, err)

	_, err = f.uc.Dispatch(out.ID)
	require.ErrorIs(t, err, domain.ErrTransferImmutable)
	_, err = f.uc.Complete(context.Background(), out.ID)
	require.ErrorIs(t, err, domain.ErrTransferImmutable)
	_, err = f.uc.Cancel(out.ID)
	require.ErrorIs(t, err, domain.ErrTransferImmutable)
}
