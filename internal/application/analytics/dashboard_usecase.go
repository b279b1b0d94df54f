// Package analytics contiene los casos de uso de solo lectura: el resumen
// operativo del dashboard y las métricas de sostenibilidad por bodega.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

// DashboardUseCase genera el resumen operativo del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos llamadas en paralelo:
//  1. GetDashboardCounts       → conteos de bodegas, productos, alertas
//  2. GetMovementTotals(mes)   → unidades movidas en el mes en curso
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	type countsResult struct {
		counts repository.DashboardCounts
		err    error
	}
	type movementResult struct {
		totals repository.MovementTotals
		err    error
	}

	countsCh := make(chan countsResult, 1)
	movementCh := make(chan movementResult, 1)

	go func() {
		counts, err := uc.analyticsRepo.GetDashboardCounts(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		totals, err := uc.analyticsRepo.GetMovementTotals(ctx, monthStart, monthEnd)
		movementCh <- movementResult{totals, err}
	}()

	counts := <-countsCh
	movement := <-movementCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if movement.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos del mes: %w", movement.err)
	}

	return &dto.DashboardSummaryDTO{
		Warehouses:       counts.counts.Warehouses,
		Products:         counts.counts.Products,
		LowStockItems:    counts.counts.LowStockItems,
		PendingTransfers: counts.counts.PendingTransfers,
		OpenOrders:       counts.counts.OpenOrders,
		MonthInboundQty:  movement.totals.InboundQty,
		MonthOutboundQty: movement.totals.OutboundQty,
		MonthWasteQty:    movement.totals.WasteQty,
		MonthRecycledQty: movement.totals.RecycledQty,
		PeriodLabel:      now.Format("2006-01"),
	}, nil
}
