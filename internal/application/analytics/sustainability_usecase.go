package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/repository"
)

// decimales de la tasa de reciclaje en las respuestas
const recyclingRateScale = 4

// SustainabilityUseCase calcula la métrica ambiental mensual de una bodega
// a partir de sus transacciones WASTE y RECYCLING.
type SustainabilityUseCase struct {
	warehouseRepo repository.WarehouseRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewSustainabilityUseCase construye el caso de uso.
func NewSustainabilityUseCase(
	warehouseRepo repository.WarehouseRepository,
	analyticsRepo repository.AnalyticsRepository,
) *SustainabilityUseCase {
	return &SustainabilityUseCase{warehouseRepo: warehouseRepo, analyticsRepo: analyticsRepo}
}

// GetMetric calcula la métrica de la bodega para el período "YYYY-MM".
//
//	WastedQty      = suma de líneas WASTE del mes
//	RecycledQty    = suma de líneas RECYCLING del mes
//	RecyclingRate  = RecycledQty / (WastedQty + RecycledQty); 0 si no hubo bajas
//	DivertedWeight = suma de (cantidad reciclada * peso unitario en kg),
//	                 solo de productos marcados como reciclables
func (uc *SustainabilityUseCase) GetMetric(ctx context.Context, warehouseID, period string) (*dto.SustainabilityMetricDTO, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	from, to, err := periodRange(period)
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.GetDisposals(ctx, warehouseID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sostenibilidad: bajas de la bodega %s: %w", warehouseID, err)
	}

	metric := entity.SustainabilityMetric{
		WarehouseID:    warehouseID,
		Period:         period,
		WastedQty:      decimal.Zero,
		RecycledQty:    decimal.Zero,
		RecyclingRate:  decimal.Zero,
		DivertedWeight: decimal.Zero,
		ComputedAt:     time.Now(),
	}
	for _, row := range rows {
		switch row.TxType {
		case entity.TransactionTypeWaste:
			metric.WastedQty = metric.WastedQty.Add(row.Quantity)
		case entity.TransactionTypeRecycling:
			metric.RecycledQty = metric.RecycledQty.Add(row.Quantity)
			if row.Recyclable {
				metric.DivertedWeight = metric.DivertedWeight.Add(row.Quantity.Mul(row.UnitWeightKg))
			}
		}
	}
	disposed := metric.WastedQty.Add(metric.RecycledQty)
	if disposed.GreaterThan(decimal.Zero) {
		metric.RecyclingRate = metric.RecycledQty.DivRound(disposed, recyclingRateScale)
	}

	return &dto.SustainabilityMetricDTO{
		WarehouseID:    metric.WarehouseID,
		Period:         metric.Period,
		WastedQty:      metric.WastedQty,
		RecycledQty:    metric.RecycledQty,
		RecyclingRate:  metric.RecyclingRate,
		DivertedWeight: metric.DivertedWeight,
		ComputedAt:     metric.ComputedAt,
	}, nil
}

// periodRange convierte "YYYY-MM" en el rango [inicio de mes, fin de mes].
func periodRange(period string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}
