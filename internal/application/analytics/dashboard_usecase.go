// Package analytics contiene los KPIs del dashboard del PDV.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/store"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

const dashboardTopProducts = 5

// Source datos en memoria que consulta el dashboard (lo implementa *store.Store).
type Source interface {
	ListSales(f store.SaleFilter) []*entity.Sale
	ListProducts(category, search string) []*entity.Product
	LowStock(threshold int) []*entity.Product
	Balance() decimal.Decimal
}

// ConfigReader configuración vigente (umbral y alerta de stock bajo).
type ConfigReader interface {
	Get() entity.StoreConfig
}

// DashboardUseCase calcula el resumen a partir del estado en memoria; no toca el backend.
type DashboardUseCase struct {
	source Source
	cfg    ConfigReader
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(source Source, cfg ConfigReader) *DashboardUseCase {
	return &DashboardUseCase{source: source, cfg: cfg, now: time.Now}
}

// GetSummary arma el resumen. period vacío = today; "all" no está permitido aquí.
func (uc *DashboardUseCase) GetSummary(period string) (*dto.DashboardSummaryDTO, error) {
	if period == "" {
		period = pos.PeriodToday
	}
	now := uc.now()
	if period == pos.PeriodAll {
		return nil, errInvalidPeriod
	}
	from, to, err := pos.PeriodRange(period, now)
	if err != nil {
		return nil, err
	}

	sales := uc.source.ListSales(store.SaleFilter{})

	summary := &dto.DashboardSummaryDTO{
		Today:        metricsFor(pos.PeriodToday, sales, now),
		Week:         metricsFor(pos.PeriodWeek, sales, now),
		Month:        metricsFor(pos.PeriodMonth, sales, now),
		Last7Days:    lastDays(sales, now, 7),
		TopProducts:  topProducts(inRange(sales, from, to), dashboardTopProducts),
		Balance:      uc.source.Balance(),
		LowStock:     []dto.ProductResponse{},
		ProductCount: len(uc.source.ListProducts("", "")),
	}
	switch period {
	case pos.PeriodToday:
		summary.Selected = summary.Today
	case pos.PeriodWeek:
		summary.Selected = summary.Week
	case pos.PeriodMonth:
		summary.Selected = summary.Month
	}

	if cfg := uc.cfg.Get(); cfg.LowStockAlert {
		for _, p := range uc.source.LowStock(cfg.LowStockThreshold) {
			summary.LowStock = append(summary.LowStock, dto.NewProductResponse(p))
		}
	}
	return summary, nil
}

func metricsFor(period string, sales []*entity.Sale, now time.Time) dto.PeriodMetricsDTO {
	from, to, _ := pos.PeriodRange(period, now)
	m := dto.PeriodMetricsDTO{Period: period, Revenue: decimal.Zero, AverageTicket: decimal.Zero}
	for _, s := range inRange(sales, from, to) {
		m.SalesCount++
		m.Revenue = m.Revenue.Add(s.Total)
		for _, it := range s.Items {
			m.ItemsSold += it.Quantity
		}
	}
	if m.SalesCount > 0 {
		m.AverageTicket = m.Revenue.Div(decimal.NewFromInt(int64(m.SalesCount))).Round(2)
	}
	return m
}

func inRange(sales []*entity.Sale, from, to time.Time) []*entity.Sale {
	var out []*entity.Sale
	for _, s := range sales {
		if !from.IsZero() && s.Date.Before(from) {
			continue
		}
		if !to.IsZero() && s.Date.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func lastDays(sales []*entity.Sale, now time.Time, n int) []dto.DailyRevenueDTO {
	days := pos.LastDays(n, now)
	out := make([]dto.DailyRevenueDTO, 0, n)
	for _, start := range days {
		d := dto.DailyRevenueDTO{Date: start.Format("2006-01-02"), Revenue: decimal.Zero}
		for _, s := range inRange(sales, start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)) {
			d.Count++
			d.Revenue = d.Revenue.Add(s.Total)
		}
		out = append(out, d)
	}
	return out
}

func topProducts(sales []*entity.Sale, limit int) []dto.TopProductDTO {
	byID := map[string]*dto.TopProductDTO{}
	for _, s := range sales {
		for _, it := range s.Items {
			tp, ok := byID[it.ProductID]
			if !ok {
				tp = &dto.TopProductDTO{ProductID: it.ProductID, ProductName: it.ProductName, TotalRevenue: decimal.Zero}
				byID[it.ProductID] = tp
			}
			tp.QuantitySold += it.Quantity
			tp.TotalRevenue = tp.TotalRevenue.Add(it.Subtotal())
		}
	}
	out := make([]dto.TopProductDTO, 0, len(byID))
	for _, tp := range byID {
		out = append(out, *tp)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalRevenue.Cmp(out[j].TotalRevenue); c != 0 {
			return c > 0
		}
		return out[i].ProductID < out[j].ProductID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
