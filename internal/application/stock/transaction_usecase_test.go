package stock_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	appstock "github.com/ecocycle/ecocycle-ims/internal/application/stock"
	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

type txFixture struct {
	uc  *appstock.TransactionUseCase
	inv *fakeInventoryRepo
	tx  *fakeTransactionRepo
}

func newTxFixture() *txFixture {
	inv := newFakeInventoryRepo()
	tx := newFakeTransactionRepo()
	runner := &fakeRunner{inv: inv, tx: tx}
	warehouses := newFakeWarehouseRepo("wh-1")
	products := newFakeProductRepo(product("prod-1", 100), product("prod-2", 250))
	return &txFixture{
		uc:  appstock.NewTransactionUseCase(warehouses, products, tx, runner),
		inv: inv,
		tx:  tx,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Un STOCK_IN sobre un par bodega-producto sin fila debe crearla con la cantidad.
func TestTransactionCreate_EntradaCreaFila(t *testing.T) {
	f := newTxFixture()
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeStockIn,
		WarehouseID: "wh-1",
		Items: []dto.TransactionItemRequest{
			{ProductID: "prod-1", Quantity: d(10), UnitCost: d(4)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, strings.HasPrefix(out.Number, "TRX-"))
	assert.Equal(t, "user-1", out.CreatedBy)
	require.Len(t, out.Items, 1)

	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(10)))
	assert.True(t, row.Available.Equal(d(10)))
	assert.True(t, row.Reserved.IsZero())
}

// Una salida sin stock suficiente debe fallar sin tocar inventario ni persistir nada.
func TestTransactionCreate_SalidaSinStock(t *testing.T) {
	f := newTxFixture()
	f.inv.seed("wh-1", "prod-1", 5, 0)
	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeStockOut,
		WarehouseID: "wh-1",
		Items: []dto.TransactionItemRequest{
			{ProductID: "prod-1", Quantity: d(8)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(5)), "el inventario no debe cambiar")
	assert.Empty(t, f.tx.byID, "no debe quedar cabecera persistida")
}

// Bodega inexistente se rechaza antes de abrir la transacción.
func TestTransactionCreate_BodegaInexistente(t *testing.T) {
	f := newTxFixture()
	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeStockIn,
		WarehouseID: "wh-404",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: d(1)}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Producto inexistente en una línea se rechaza.
func TestTransactionCreate_ProductoInexistente(t *testing.T) {
	f := newTxFixture()
	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeStockIn,
		WarehouseID: "wh-1",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-404", Quantity: d(1)}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Cantidad cero solo es válida en ADJUSTMENT.
func TestTransactionCreate_CantidadCero(t *testing.T) {
	f := newTxFixture()
	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeStockIn,
		WarehouseID: "wh-1",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: d(0)}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	f.inv.seed("wh-1", "prod-1", 7, 0)
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeAdjustment,
		WarehouseID: "wh-1",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: d(0)}},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Items[0].PreviousQuantity)
	assert.True(t, out.Items[0].PreviousQuantity.Equal(d(7)))
	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.IsZero())
}

// El ADJUSTMENT fija cantidad absoluta y guarda la previa en la línea.
func TestTransactionCreate_AjusteGuardaCantidadPrevia(t *testing.T) {
	f := newTxFixture()
	f.inv.seed("wh-1", "prod-1", 12, 3)
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeAdjustment,
		WarehouseID: "wh-1",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: d(20)}},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Items[0].PreviousQuantity)
	assert.True(t, out.Items[0].PreviousQuantity.Equal(d(12)))

	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(20)))
	assert.True(t, row.Available.Equal(d(17)), "available = 20 - reservado 3")
}

// Un ADJUSTMENT sobre un par bodega-producto sin fila de inventario se rechaza:
// solo los flujos de entrada pueden materializar filas.
func TestTransactionCreate_AjusteSinFilaDeInventario(t *testing.T) {
	f := newTxFixture()
	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeAdjustment,
		WarehouseID: "wh-1",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: d(7)}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, f.inv.rows, "la fila no debe materializarse")
	assert.Empty(t, f.tx.byID, "la transacción no debe persistirse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete (reversión)
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar una entrada debe dejar el inventario exactamente como antes.
func TestTransactionDelete_RevierteEntrada(t *testing.T) {
	f := newTxFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeStockIn,
		WarehouseID: "wh-1",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: d(6)}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), out.ID))
	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(10)))
	assert.True(t, row.Available.Equal(d(10)))
	assert.Contains(t, f.tx.deleted, out.ID)
}

// Eliminar una salida reingresa el stock.
func TestTransactionDelete_RevierteSalida(t *testing.T) {
	f := newTxFixture()
	f.inv.seed("wh-1", "prod-1", 10, 0)
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeWaste,
		WarehouseID: "wh-1",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: d(4)}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), out.ID))
	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(10)))
}

// Eliminar un ajuste restaura la cantidad previa guardada.
func TestTransactionDelete_RevierteAjuste(t *testing.T) {
	f := newTxFixture()
	f.inv.seed("wh-1", "prod-1", 12, 0)
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeAdjustment,
		WarehouseID: "wh-1",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: d(30)}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), out.ID))
	row, _ := f.inv.Get("wh-1", "prod-1")
	assert.True(t, row.Quantity.Equal(d(12)))
	assert.True(t, row.Available.Equal(d(12)))
}

// No se puede revertir una entrada cuyo stock ya se comprometió.
func TestTransactionDelete_EntradaComprometida(t *testing.T) {
	f := newTxFixture()
	out, err := f.uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		Type:        entity.TransactionTypeStockIn,
		WarehouseID: "wh-1",
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: d(5)}},
	})
	require.NoError(t, err)

	// simular que un pedido reservó parte de lo que entró
	row := f.inv.rows[invKey("wh-1", "prod-1")]
	row.Reserved = d(3)
	row.Available = d(2)

	err = f.uc.Delete(context.Background(), out.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	_, ok := f.tx.byID[out.ID]
	assert.True(t, ok, "la transacción debe seguir existiendo")
}

// Eliminar una transacción inexistente devuelve not found.
func TestTransactionDelete_Inexistente(t *testing.T) {
	f := newTxFixture()
	err := f.uc.Delete(context.Background(), "tx-404")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
