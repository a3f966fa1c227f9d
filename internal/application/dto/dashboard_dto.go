package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Today PeriodMetricsDTO `json:"today"`
	Week  PeriodMetricsDTO `json:"week"`  // semana en curso (desde el domingo)
	Month PeriodMetricsDTO `json:"month"` // mes en curso

	// Periodo pedido con ?period= (today | week | month); repite uno de los anteriores.
	Selected PeriodMetricsDTO `json:"selected"`

	Last7Days    []DailyRevenueDTO `json:"last_7_days"`
	TopProducts  []TopProductDTO   `json:"top_products"` // del periodo seleccionado
	Balance      decimal.Decimal   `json:"balance"`
	LowStock     []ProductResponse `json:"low_stock"`
	ProductCount int               `json:"product_count"`
}

// PeriodMetricsDTO KPIs de un periodo.
type PeriodMetricsDTO struct {
	Period        string          `json:"period"`
	SalesCount    int             `json:"sales_count"`
	Revenue       decimal.Decimal `json:"revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	ItemsSold     int             `json:"items_sold"`
}

// DailyRevenueDTO punto de la serie diaria.
type DailyRevenueDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
	Count   int             `json:"count"`
}

// TopProductDTO producto más vendido por facturación.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
