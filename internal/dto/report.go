package dto

// TypeSummary aggregates ledger entries of one movement type within a date
// window.
type TypeSummary struct {
	Type          string  `json:"type"`
	Count         int64   `json:"count"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

// DailySummary aggregates ledger entries per (day, type).
type DailySummary struct {
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Count         int64   `json:"count"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

// SummaryResponse is the payload of GET /transactions/summary.
type SummaryResponse struct {
	Summary      []TypeSummary  `json:"summary"`
	DailySummary []DailySummary `json:"daily_summary"`
}

// StockMovementPoint is one day of inbound/outbound quantities for the
// dashboard chart.
type StockMovementPoint struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats is the overview card payload.
type DashboardStats struct {
	TotalProducts  int64   `json:"total_products"`
	LowStockCount  int64   `json:"low_stock_count"`
	TotalValuation float64 `json:"total_valuation"`
}
