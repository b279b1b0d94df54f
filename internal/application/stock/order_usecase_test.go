package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	appstock "github.com/ecocycle/ecocycle-ims/internal/application/stock"
	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
)

type ordFixture struct {
	uc  *appstock.OrderUseCase
	inv *fakeInventoryRepo
	ord *fakeOrderRepo
}

func newOrdFixture() *ordFixture {
	inv := newFakeInventoryRepo()
	ord := newFakeOrderRepo()
	runner := &fakeRunner{inv: inv, ord: ord}
	warehouses := newFakeWarehouseRepo("wh-1")
	products := newFakeProductRepo(product("prod-1", 100), product("prod-2", 250))
	return &ordFixture{
		uc:  appstock.NewOrderUseCase(warehouses, products, ord, runner),
		inv: inv,
		ord: ord,
	}
}

func (f *ordFixture) create(t *testing.T) *dto.OrderResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{
		WarehouseID:  "wh-1",
		CustomerName: "Reciclados del Norte",
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: d(4)},
		},
	})
	require.NoError(t, err)
	return out
}

func (f *ordFixture) advance(t *testing.T, id string, statuses ...string) {
	t.Helper()
	for _, s := range statuses {
		_, err := f.uc.ChangeStatus(context.Background(), id, s)
		require.NoError(t, err, s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear el pedido reserva el stock de cada línea y toma el precio del producto.
func TestOrderCreate_ReservaStock(t *testing.T) {
	f := newOrdFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)

	out := f.create(t)
	assert.Equal(t, entity.OrderStatusNew, out.Status)
	assert.True(t, out.TotalAmount.Equal(d(400)), "4 unidades a precio 100")

	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(10)), "el físico no cambia al reservar")
	assert.True(t, row.Reserved.Equal(d(4)))
	assert.True(t, row.Available.Equal(d(6)))
}

// Sin disponible suficiente el pedido no se crea.
func TestOrderCreate_SinDisponible(t *testing.T) {
	f := newOrdFixture()
	f.inv.seed("wh-1", "prod-1", 3, 0)
	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{
		WarehouseID:  "wh-1",
		CustomerName: "Cliente",
		Items:        []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: d(4)}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, f.ord.byID)
}

// El total suma precio por cantidad de varias líneas.
func TestOrderCreate_TotalVariasLineas(t *testing.T) {
	f := newOrdFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	f.inv.seed("wh-1", "prod-2", 10, 0)
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{
		WarehouseID:  "wh-1",
		CustomerName: "Cliente",
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: d(2)}, // 200
			{ProductID: "prod-2", Quantity: d(3)}, // 750
		},
	})
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(d(950)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

// El camino feliz completo termina en DELIVERED; SHIPPED consume la reserva.
func TestOrderStatus_CaminoFeliz(t *testing.T) {
	f := newOrdFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t)

	f.advance(t, out.ID,
		entity.OrderStatusProcessing,
		entity.OrderStatusPicking,
		entity.OrderStatusPacked,
		entity.OrderStatusShipped,
	)

	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(6)), "el despacho descarga el físico")
	assert.True(t, row.Reserved.IsZero())
	assert.True(t, row.Available.Equal(d(6)), "available no cambia al despachar")

	delivered, err := f.uc.ChangeStatus(context.Background(), out.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, delivered.Status)
}

// Cancelar antes de despachar libera la reserva sin mover el físico.
func TestOrderStatus_CancelarLiberaReserva(t *testing.T) {
	f := newOrdFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t)
	f.advance(t, out.ID, entity.OrderStatusProcessing)

	cancelled, err := f.uc.ChangeStatus(context.Background(), out.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(10)))
	assert.True(t, row.Reserved.IsZero())
	assert.True(t, row.Available.Equal(d(10)))
}

// La devolución de un pedido entregado reingresa el stock despachado.
func TestOrderStatus_DevolucionReingresaStock(t *testing.T) {
	f := newOrdFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t)
	f.advance(t, out.ID,
		entity.OrderStatusProcessing,
		entity.OrderStatusPicking,
		entity.OrderStatusPacked,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusReturned,
	)

	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(10)))
	assert.True(t, row.Available.Equal(d(10)))
	assert.True(t, row.Reserved.IsZero())
}

// Una transición fuera del grafo se rechaza sin tocar inventario.
func TestOrderStatus_TransicionInvalida(t *testing.T) {
	f := newOrdFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t)

	_, err := f.uc.ChangeStatus(context.Background(), out.ID, entity.OrderStatusShipped)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Reserved.Equal(d(4)), "la reserva sigue intacta")
}

// No se puede cancelar un pedido ya despachado.
func TestOrderStatus_NoCancelarDespachado(t *testing.T) {
	f := newOrdFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t)
	f.advance(t, out.ID,
		entity.OrderStatusProcessing,
		entity.OrderStatusPicking,
		entity.OrderStatusPacked,
		entity.OrderStatusShipped,
	)

	_, err := f.uc.ChangeStatus(context.Background(), out.ID, entity.OrderStatusCancelled)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Estado desconocido se rechaza como entrada inválida.
func TestOrderStatus_EstadoDesconocido(t *testing.T) {
	f := newOrdFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out := f.create(t)
	_, err := f.uc.ChangeStatus(context.Background(), out.ID, "LOST")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
