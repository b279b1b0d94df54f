package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/ecocycle-ims/internal/application/analytics"
	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

type fakeAnalyticsRepo struct {
	counts    repository.DashboardCounts
	totals    repository.MovementTotals
	disposals []repository.DisposalRow
	gotFrom   time.Time
	gotTo     time.Time
}

func (r *fakeAnalyticsRepo) GetDashboardCounts(ctx context.Context) (repository.DashboardCounts, error) {
	return r.counts, nil
}

func (r *fakeAnalyticsRepo) GetMovementTotals(ctx context.Context, from, to time.Time) (repository.MovementTotals, error) {
	return r.totals, nil
}

func (r *fakeAnalyticsRepo) GetDisposals(ctx context.Context, warehouseID string, from, to time.Time) ([]repository.DisposalRow, error) {
	r.gotFrom, r.gotTo = from, to
	return r.disposals, nil
}

type fakeWarehouseRepo struct{ ids map[string]bool }

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if r.ids[id] {
		return &entity.Warehouse{ID: id, Code: "BOG-01", Name: "Bodega Norte"}, nil
	}
	return nil, nil
}
func (r *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error                 { return nil }
func (r *fakeWarehouseRepo) Delete(id string) error                           { return nil }
func (r *fakeWarehouseRepo) Search(q repository.SearchQuery) ([]*entity.Warehouse, int, error) {
	return nil, 0, nil
}

// La métrica agrega mermas y reciclaje por separado y pondera los kg por peso unitario.
func TestSustainability_CalculaMetrica(t *testing.T) {
	repo := &fakeAnalyticsRepo{disposals: []repository.DisposalRow{
		{ProductID: "p1", TxType: entity.TransactionTypeWaste, Quantity: d(10), UnitWeightKg: decimal.NewFromFloat(0.5)},
		{ProductID: "p2", TxType: entity.TransactionTypeRecycling, Quantity: d(20), UnitWeightKg: decimal.NewFromFloat(0.5), Recyclable: true},
		{ProductID: "p3", TxType: entity.TransactionTypeRecycling, Quantity: d(10), UnitWeightKg: d(2), Recyclable: true},
	}}
	uc := analytics.NewSustainabilityUseCase(&fakeWarehouseRepo{ids: map[string]bool{"wh-1": true}}, repo)

	out, err := uc.GetMetric(context.Background(), "wh-1", "2026-08")
	require.NoError(t, err)
	assert.Equal(t, "2026-08", out.Period)
	assert.True(t, out.WastedQty.Equal(d(10)))
	assert.True(t, out.RecycledQty.Equal(d(30)))
	assert.True(t, out.RecyclingRate.Equal(decimal.NewFromFloat(0.75)), "30 de 40 unidades recicladas")
	assert.True(t, out.DivertedWeight.Equal(d(30)), "20*0.5 + 10*2 kg")
}

// Un producto no reciclable que pasa por RECYCLING cuenta en la tasa pero no
// aporta kilos desviados.
func TestSustainability_NoReciclableNoSumaKilos(t *testing.T) {
	repo := &fakeAnalyticsRepo{disposals: []repository.DisposalRow{
		{ProductID: "p1", TxType: entity.TransactionTypeWaste, Quantity: d(10), UnitWeightKg: d(1)},
		{ProductID: "p2", TxType: entity.TransactionTypeRecycling, Quantity: d(20), UnitWeightKg: d(1), Recyclable: true},
		{ProductID: "p3", TxType: entity.TransactionTypeRecycling, Quantity: d(5), UnitWeightKg: d(3), Recyclable: false},
	}}
	uc := analytics.NewSustainabilityUseCase(&fakeWarehouseRepo{ids: map[string]bool{"wh-1": true}}, repo)

	out, err := uc.GetMetric(context.Background(), "wh-1", "2026-08")
	require.NoError(t, err)
	assert.True(t, out.RecycledQty.Equal(d(25)), "el reciclaje suma ambas líneas")
	assert.True(t, out.DivertedWeight.Equal(d(20)), "solo los 20 kg del producto reciclable")
}

// Sin bajas en el mes la tasa es cero, no una división por cero.
func TestSustainability_SinBajas(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewSustainabilityUseCase(&fakeWarehouseRepo{ids: map[string]bool{"wh-1": true}}, repo)

	out, err := uc.GetMetric(context.Background(), "wh-1", "2026-07")
	require.NoError(t, err)
	assert.True(t, out.WastedQty.IsZero())
	assert.True(t, out.RecycledQty.IsZero())
	assert.True(t, out.RecyclingRate.IsZero())
	assert.True(t, out.DivertedWeight.IsZero())
}

// El período se traduce al rango completo del mes.
func TestSustainability_RangoDelPeriodo(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewSustainabilityUseCase(&fakeWarehouseRepo{ids: map[string]bool{"wh-1": true}}, repo)

	_, err := uc.GetMetric(context.Background(), "wh-1", "2026-02")
	require.NoError(t, err)
	assert.Equal(t, 2026, repo.gotFrom.Year())
	assert.Equal(t, time.February, repo.gotFrom.Month())
	assert.Equal(t, 1, repo.gotFrom.Day())
	assert.Equal(t, time.February, repo.gotTo.Month(), "febrero termina antes del 1 de marzo")
	assert.Equal(t, 28, repo.gotTo.Day())
}

// Bodega inexistente y período mal formado se rechazan.
func TestSustainability_Entradas(t *testing.T) {
	uc := analytics.NewSustainabilityUseCase(&fakeWarehouseRepo{ids: map[string]bool{"wh-1": true}}, &fakeAnalyticsRepo{})

	_, err := uc.GetMetric(context.Background(), "wh-404", "2026-08")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetMetric(context.Background(), "wh-1", "agosto")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El resumen del dashboard combina conteos y movimientos del mes.
func TestDashboard_GetSummary(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		counts: repository.DashboardCounts{
			Warehouses:       3,
			Products:         120,
			LowStockItems:    7,
			PendingTransfers: 2,
			OpenOrders:       5,
		},
		totals: repository.MovementTotals{
			InboundQty:  d(400),
			OutboundQty: d(250),
			WasteQty:    d(12),
			RecycledQty: d(30),
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, out.Warehouses)
	assert.Equal(t, 120, out.Products)
	assert.Equal(t, 7, out.LowStockItems)
	assert.Equal(t, 2, out.PendingTransfers)
	assert.Equal(t, 5, out.OpenOrders)
	assert.True(t, out.MonthInboundQty.Equal(d(400)))
	assert.True(t, out.MonthRecycledQty.Equal(d(30)))
	assert.Equal(t, time.Now().Format("2006-01"), out.PeriodLabel)
}
