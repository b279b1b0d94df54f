package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen operativo para la pantalla principal.
type DashboardSummaryDTO struct {
	Warehouses       int             `json:"warehouses"`
	Products         int             `json:"products"`
	LowStockItems    int             `json:"low_stock_items"`
	PendingTransfers int             `json:"pending_transfers"`
	OpenOrders       int             `json:"open_orders"`
	MonthInboundQty  decimal.Decimal `json:"month_inbound_qty"`
	MonthOutboundQty decimal.Decimal `json:"month_outbound_qty"`
	MonthWasteQty    decimal.Decimal `json:"month_waste_qty"`
	MonthRecycledQty decimal.Decimal `json:"month_recycled_qty"`
	PeriodLabel      string          `json:"period_label"` // ej: "2026-08"
}
