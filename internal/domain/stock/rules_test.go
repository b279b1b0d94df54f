package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/stock"
)

func inv(quantity, reserved int64) *entity.Inventory {
	q := decimal.NewFromInt(quantity)
	r := decimal.NewFromInt(reserved)
	return &entity.Inventory{
		WarehouseID: "wh-1",
		ProductID:   "prod-1",
		Quantity:    q,
		Reserved:    r,
		Available:   q.Sub(r),
	}
}

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Apply
// ──────────────────────────────────────────────────────────────────────────────

// Las entradas (STOCK_IN, RETURN) suman quantity y available.
func TestApply_EntradaSumaStock(t *testing.T) {
	for _, typ := range []string{entity.TransactionTypeStockIn, entity.TransactionTypeReturn} {
		i := inv(10, 3)
		prev, err := stock.Apply(i, typ, d(5))
		require.NoError(t, err, typ)
		assert.Nil(t, prev)
		assert.True(t, i.Quantity.Equal(d(15)), "quantity debe ser 15")
		assert.True(t, i.Available.Equal(d(12)), "available debe ser 12")
		assert.True(t, i.Reserved.Equal(d(3)), "reserved no cambia")
	}
}

// Las salidas (STOCK_OUT, WASTE, RECYCLING) restan quantity y available.
func TestApply_SalidaRestaStock(t *testing.T) {
	for _, typ := range []string{entity.TransactionTypeStockOut, entity.TransactionTypeWaste, entity.TransactionTypeRecycling} {
		i := inv(10, 2)
		_, err := stock.Apply(i, typ, d(4))
		require.NoError(t, err, typ)
		assert.True(t, i.Quantity.Equal(d(6)))
		assert.True(t, i.Available.Equal(d(4)))
	}
}

// Una salida mayor que available debe rechazarse y dejar el inventario intacto.
func TestApply_SalidaSinStockSuficiente(t *testing.T) {
	i := inv(10, 8) // available = 2
	_, err := stock.Apply(i, entity.TransactionTypeStockOut, d(5))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, i.Quantity.Equal(d(10)), "quantity no debe cambiar tras el rechazo")
	assert.True(t, i.Available.Equal(d(2)), "available no debe cambiar tras el rechazo")
}

// ADJUSTMENT fija quantity de forma absoluta y recalcula available.
func TestApply_AjusteAbsoluto(t *testing.T) {
	i := inv(10, 3)
	prev, err := stock.Apply(i, entity.TransactionTypeAdjustment, d(20))
	require.NoError(t, err)
	require.NotNil(t, prev, "el ajuste debe devolver la cantidad previa")
	assert.True(t, prev.Equal(d(10)))
	assert.True(t, i.Quantity.Equal(d(20)))
	assert.True(t, i.Available.Equal(d(17)), "available = 20 - 3")
}

// available nunca queda negativo tras un ADJUSTMENT por debajo de lo reservado.
func TestApply_AjusteNoDejaAvailableNegativo(t *testing.T) {
	i := inv(10, 8)
	_, err := stock.Apply(i, entity.TransactionTypeAdjustment, d(5))
	require.NoError(t, err)
	assert.True(t, i.Quantity.Equal(d(5)))
	assert.True(t, i.Available.Equal(decimal.Zero), "available se acota en 0")
}

func TestApply_TipoInvalido(t *testing.T) {
	i := inv(10, 0)
	_, err := stock.Apply(i, "TELEPORT", d(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_CantidadNegativa(t *testing.T) {
	i := inv(10, 0)
	_, err := stock.Apply(i, entity.TransactionTypeStockIn, d(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Revert — propiedad de invertibilidad (aplicar y revertir vuelve al estado inicial)
// ──────────────────────────────────────────────────────────────────────────────

func TestRevert_InvertibilidadPorTipo(t *testing.T) {
	types := []string{
		entity.TransactionTypeStockIn,
		entity.TransactionTypeStockOut,
		entity.TransactionTypeReturn,
		entity.TransactionTypeWaste,
		entity.TransactionTypeRecycling,
		entity.TransactionTypeAdjustment,
	}
	for _, typ := range types {
		i := inv(50, 10)
		prev, err := stock.Apply(i, typ, d(7))
		require.NoError(t, err, typ)
		require.NoError(t, stock.Revert(i, typ, d(7), prev), typ)
		assert.True(t, i.Quantity.Equal(d(50)), "%s: quantity debe volver a 50", typ)
		assert.True(t, i.Available.Equal(d(40)), "%s: available debe volver a 40", typ)
		assert.True(t, i.Reserved.Equal(d(10)), "%s: reserved debe volver a 10", typ)
	}
}

// Revertir una entrada ya consumida debe fallar en vez de dejar stock negativo.
func TestRevert_EntradaYaConsumida(t *testing.T) {
	i := inv(3, 2) // available = 1
	err := stock.Revert(i, entity.TransactionTypeStockIn, d(5), nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Revertir un ADJUSTMENT sin cantidad previa registrada es un error de datos.
func TestRevert_AjusteSinPrevio(t *testing.T) {
	i := inv(10, 0)
	err := stock.Revert(i, entity.TransactionTypeAdjustment, d(10), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reservas de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestReserve_CompromenteStock(t *testing.T) {
	i := inv(10, 0)
	require.NoError(t, stock.Reserve(i, d(4)))
	assert.True(t, i.Reserved.Equal(d(4)))
	assert.True(t, i.Available.Equal(d(6)))
	assert.True(t, i.Quantity.Equal(d(10)), "reservar no mueve stock físico")
}

func TestReserve_SinDisponible(t *testing.T) {
	i := inv(10, 9)
	err := stock.Reserve(i, d(2))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRelease_LiberaReserva(t *testing.T) {
	i := inv(10, 4)
	require.NoError(t, stock.Release(i, d(4)))
	assert.True(t, i.Reserved.Equal(decimal.Zero))
	assert.True(t, i.Available.Equal(d(10)))
}

func TestConsume_DespachaReservado(t *testing.T) {
	i := inv(10, 4)
	require.NoError(t, stock.Consume(i, d(4)))
	assert.True(t, i.Quantity.Equal(d(6)))
	assert.True(t, i.Reserved.Equal(decimal.Zero))
	assert.True(t, i.Available.Equal(d(6)), "available no cambia al despachar")
}

func TestRestock_ReingresaDevolucion(t *testing.T) {
	i := inv(6, 0)
	require.NoError(t, stock.Restock(i, d(4)))
	assert.True(t, i.Quantity.Equal(d(10)))
	assert.True(t, i.Available.Equal(d(10)))
}

// La invariante available = quantity - reserved se conserva tras cada operación de pedido.
func TestInvariante_PedidoCompleto(t *testing.T) {
	i := inv(20, 0)
	require.NoError(t, stock.Reserve(i, d(5)))
	assert.True(t, i.Available.Equal(i.Quantity.Sub(i.Reserved)))
	require.NoError(t, stock.Consume(i, d(5)))
	assert.True(t, i.Available.Equal(i.Quantity.Sub(i.Reserved)))
	require.NoError(t, stock.Restock(i, d(5)))
	assert.True(t, i.Available.Equal(i.Quantity.Sub(i.Reserved)))
}
