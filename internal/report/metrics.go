package report

import (
	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// summarize derives the headline KPIs from the monthly series. Distinct
// clients are counted across the whole period, not as a per-month max.
func summarize(monthly []entity.MonthlyPoint, records []entity.LineRecord) entity.Summary {
	s := entity.Summary{}

	for _, m := range monthly {
		s.TotalSales = s.TotalSales.Add(m.Sales)
		s.TotalOrders += m.Orders
	}

	clients := make(map[string]struct{})
	for _, rec := range records {
		if rec.ClientID != "" {
			clients[rec.ClientID] = struct{}{}
		}
	}
	s.TotalClients = len(clients)

	if s.TotalOrders > 0 {
		s.AvgOrderValue = s.TotalSales.Div(decimal.NewFromInt(int64(s.TotalOrders)))
	}

	if len(monthly) >= 2 {
		last := monthly[len(monthly)-1]
		prev := monthly[len(monthly)-2]
		s.SalesGrowth = growthPct(last.Sales, prev.Sales)
		s.OrdersGrowth = growthPct(
			decimal.NewFromInt(int64(last.Orders)),
			decimal.NewFromInt(int64(prev.Orders)),
		)
	}
	return s
}

// growthPct is the period-over-period change in percent, zero when the
// previous period is zero.
func growthPct(last, prev decimal.Decimal) float64 {
	if prev.IsZero() {
		return 0
	}
	return last.Sub(prev).Div(prev).Mul(oneHundred).InexactFloat64()
}
