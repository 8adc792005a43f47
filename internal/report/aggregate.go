package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	topClientCount    = 5
	recentOrderCount  = 6
	lowStockThreshold = 15
	lowStockCount     = 5
)

var colorPalette = []string{
	"#8884d8", "#82ca9d", "#ffc658", "#ff7300",
	"#8dd1e1", "#a4de6c", "#d0ed57", "#ffa07a",
}

// orderRollup folds line records into per-order totals and remembers the
// first product seen per order for the recent-orders view.
type orderRollup struct {
	totals   map[string]decimal.Decimal
	profits  map[string]decimal.Decimal
	products map[string]string
}

func rollupOrders(records []entity.LineRecord) orderRollup {
	r := orderRollup{
		totals:   make(map[string]decimal.Decimal),
		profits:  make(map[string]decimal.Decimal),
		products: make(map[string]string),
	}
	for _, rec := range records {
		r.totals[rec.OrderID] = r.totals[rec.OrderID].Add(rec.Sales)
		r.profits[rec.OrderID] = r.profits[rec.OrderID].Add(rec.Profit)
		if _, ok := r.products[rec.OrderID]; !ok {
			r.products[rec.OrderID] = rec.Product
		}
	}
	return r
}

func monthlySeries(records []entity.LineRecord) []entity.MonthlyPoint {
	type bucket struct {
		point   entity.MonthlyPoint
		orders  map[string]struct{}
		clients map[string]struct{}
	}
	buckets := make(map[string]*bucket)

	for _, rec := range records {
		key := fmt.Sprintf("%04d-%02d", rec.Year, rec.MonthNumber)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				point: entity.MonthlyPoint{
					Month:       rec.MonthAbbr,
					Label:       fmt.Sprintf("%s %d", rec.MonthName, rec.Year),
					Year:        rec.Year,
					MonthNumber: rec.MonthNumber,
				},
				orders:  make(map[string]struct{}),
				clients: make(map[string]struct{}),
			}
			buckets[key] = b
		}
		b.point.Sales = b.point.Sales.Add(rec.Sales)
		b.point.Profit = b.point.Profit.Add(rec.Profit)
		b.orders[rec.OrderID] = struct{}{}
		if rec.ClientID != "" {
			b.clients[rec.ClientID] = struct{}{}
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]entity.MonthlyPoint, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		b.point.Orders = len(b.orders)
		b.point.Clients = len(b.clients)
		series = append(series, b.point)
	}
	return series
}

func segmentBreakdown(records []entity.LineRecord) []entity.SegmentMetric {
	type agg struct {
		sales, profit, units decimal.Decimal
	}
	bySegment := make(map[string]*agg)
	total := decimal.Zero

	for _, rec := range records {
		a, ok := bySegment[rec.Segment]
		if !ok {
			a = &agg{}
			bySegment[rec.Segment] = a
		}
		a.sales = a.sales.Add(rec.Sales)
		a.profit = a.profit.Add(rec.Profit)
		a.units = a.units.Add(rec.UnitsSold)
		total = total.Add(rec.Sales)
	}

	segments := make([]entity.SegmentMetric, 0, len(bySegment))
	for name, a := range bySegment {
		share := 0.0
		if total.IsPositive() {
			share = math.Round(a.sales.Div(total).Mul(oneHundred).InexactFloat64()*10) / 10
		}
		segments = append(segments, entity.SegmentMetric{
			Name:   name,
			Share:  share,
			Sales:  a.sales,
			Profit: a.profit,
			Units:  a.units,
		})
	}
	sort.Slice(segments, func(i, j int) bool {
		if !segments[i].Sales.Equal(segments[j].Sales) {
			return segments[i].Sales.GreaterThan(segments[j].Sales)
		}
		return segments[i].Name < segments[j].Name
	})
	for i := range segments {
		segments[i].Color = colorPalette[i%len(colorPalette)]
	}
	return segments
}

func regionBreakdown(records []entity.LineRecord) []entity.RegionMetric {
	type agg struct {
		sales, profit decimal.Decimal
	}
	byRegion := make(map[string]*agg)
	for _, rec := range records {
		a, ok := byRegion[rec.Country]
		if !ok {
			a = &agg{}
			byRegion[rec.Country] = a
		}
		a.sales = a.sales.Add(rec.Sales)
		a.profit = a.profit.Add(rec.Profit)
	}

	regions := make([]entity.RegionMetric, 0, len(byRegion))
	for name, a := range byRegion {
		regions = append(regions, entity.RegionMetric{Region: name, Sales: a.sales, Profit: a.profit})
	}
	sort.Slice(regions, func(i, j int) bool {
		if !regions[i].Sales.Equal(regions[j].Sales) {
			return regions[i].Sales.GreaterThan(regions[j].Sales)
		}
		return regions[i].Region < regions[j].Region
	})
	return regions
}

// topClients ranks clients by order-level totals. The total prefers the
// computed per-order sales and falls back to the order's stated total for
// orders that produced no line records.
func topClients(orders []entity.Order, rollup orderRollup, ix *refIndex) []entity.TopClient {
	type stats struct {
		total     decimal.Decimal
		purchases int
		last      *time.Time
	}
	byClient := make(map[string]*stats)

	for _, o := range orders {
		if o.ID == "" || o.ClientID == "" {
			continue
		}
		s, ok := byClient[o.ClientID]
		if !ok {
			s = &stats{}
			byClient[o.ClientID] = s
		}
		if total, ok := rollup.totals[o.ID]; ok {
			s.total = s.total.Add(total)
		} else {
			s.total = s.total.Add(o.Total)
		}
		s.purchases++
		if o.Placed != nil && (s.last == nil || o.Placed.After(*s.last)) {
			s.last = o.Placed
		}
	}

	clients := make([]entity.TopClient, 0, len(byClient))
	for id, s := range byClient {
		clients = append(clients, entity.TopClient{
			ClientID:     id,
			Name:         ix.clientName(id),
			Purchases:    s.purchases,
			Total:        s.total,
			LastPurchase: formatISO(s.last),
		})
	}
	sort.Slice(clients, func(i, j int) bool {
		if !clients[i].Total.Equal(clients[j].Total) {
			return clients[i].Total.GreaterThan(clients[j].Total)
		}
		return clients[i].ClientID < clients[j].ClientID
	})
	if len(clients) > topClientCount {
		clients = clients[:topClientCount]
	}
	return clients
}

func recentOrders(orders []entity.Order, rollup orderRollup, ix *refIndex) []entity.RecentOrder {
	type annotated struct {
		order entity.Order
		date  *time.Time
	}
	entries := make([]annotated, 0, len(orders))
	for _, o := range orders {
		if o.ID == "" {
			continue
		}
		entries = append(entries, annotated{order: o, date: o.Placed})
	}
	sort.Slice(entries, func(i, j int) bool {
		ti, tj := int64(0), int64(0)
		if entries[i].date != nil {
			ti = entries[i].date.Unix()
		}
		if entries[j].date != nil {
			tj = entries[j].date.Unix()
		}
		if ti != tj {
			return ti > tj
		}
		return entries[i].order.ID < entries[j].order.ID
	})
	if len(entries) > recentOrderCount {
		entries = entries[:recentOrderCount]
	}

	recents := make([]entity.RecentOrder, 0, len(entries))
	for _, e := range entries {
		total, ok := rollup.totals[e.order.ID]
		if !ok {
			total = e.order.Total
		}
		product, ok := rollup.products[e.order.ID]
		if !ok {
			product = "—"
		}
		recents = append(recents, entity.RecentOrder{
			Code:    formatCode("ORD", e.order.ID),
			Client:  ix.clientName(e.order.ClientID),
			Product: product,
			Total:   total,
			Status:  humanize(e.order.Status, "Pendiente"),
			Date:    formatISO(e.date),
		})
	}
	return recents
}

func lowStockProducts(products []entity.Product) []entity.LowStockProduct {
	low := make([]entity.LowStockProduct, 0)
	for _, p := range products {
		if p.Stock > lowStockThreshold {
			continue
		}
		name := p.Name
		if name == "" {
			name = "Producto"
		}
		low = append(low, entity.LowStockProduct{Name: name, Stock: p.Stock, Level: stockLevel(p.Stock)})
	}
	sort.Slice(low, func(i, j int) bool {
		if low[i].Stock != low[j].Stock {
			return low[i].Stock < low[j].Stock
		}
		return low[i].Name < low[j].Name
	})
	if len(low) > lowStockCount {
		low = low[:lowStockCount]
	}
	return low
}

func stockLevel(stock int) string {
	switch {
	case stock <= 3:
		return "low"
	case stock <= 8:
		return "medium"
	default:
		return "ok"
	}
}

// movementSummaries totals inventory movements per product; "entrada"/"in"
// types count as inbound, anything else as outbound.
func movementSummaries(movements []entity.InventoryMovement) []entity.MovementSummary {
	type agg struct {
		in, out decimal.Decimal
	}
	byProduct := make(map[string]*agg)
	for _, m := range movements {
		if m.ProductID == "" {
			continue
		}
		a, ok := byProduct[m.ProductID]
		if !ok {
			a = &agg{}
			byProduct[m.ProductID] = a
		}
		if m.Type == "entrada" || m.Type == "in" {
			a.in = a.in.Add(m.Quantity)
		} else {
			a.out = a.out.Add(m.Quantity)
		}
	}

	summaries := make([]entity.MovementSummary, 0, len(byProduct))
	for id, a := range byProduct {
		summaries = append(summaries, entity.MovementSummary{ProductID: id, Inbound: a.in, Outbound: a.out})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ProductID < summaries[j].ProductID })
	return summaries
}

func returnReasons(returns []entity.Return) map[string]string {
	reasons := make(map[string]string, len(returns))
	for _, r := range returns {
		if r.OrderLineID == "" {
			continue
		}
		reasons[r.OrderLineID] = humanize(r.Reason, "Sin motivo")
	}
	return reasons
}
