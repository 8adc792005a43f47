package report

import (
	"testing"
	"time"

	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(orderID, clientID, segment, country string, year, month int, sales, profit float64) entity.LineRecord {
	_, name, abbr, _ := monthParts(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
	return entity.LineRecord{
		OrderID:     orderID,
		ClientID:    clientID,
		Segment:     segment,
		Country:     country,
		UnitsSold:   dec(1),
		Sales:       dec(sales),
		Profit:      dec(profit),
		Year:        year,
		MonthNumber: month,
		MonthName:   name,
		MonthAbbr:   abbr,
	}
}

func TestMonthlySeries(t *testing.T) {
	records := []entity.LineRecord{
		rec("o1", "c1", "Anillos", "Guatemala", 2024, 2, 100, 40),
		rec("o2", "c1", "Anillos", "Guatemala", 2024, 2, 50, 20),
		rec("o3", "c2", "Collares", "Mixco", 2024, 1, 200, 90),
		rec("o3", "c2", "Collares", "Mixco", 2024, 1, 30, 10),
	}

	series := monthlySeries(records)
	require.Len(t, series, 2)

	// chronological order
	assert.Equal(t, 1, series[0].MonthNumber)
	assert.Equal(t, "Ene", series[0].Month)
	assert.Equal(t, "Enero 2024", series[0].Label)
	assert.Equal(t, "230", series[0].Sales.String())
	assert.Equal(t, 1, series[0].Orders) // o3 counted once
	assert.Equal(t, 1, series[0].Clients)

	assert.Equal(t, 2, series[1].MonthNumber)
	assert.Equal(t, "150", series[1].Sales.String())
	assert.Equal(t, 2, series[1].Orders)
	assert.Equal(t, 1, series[1].Clients)
}

func TestSegmentBreakdown(t *testing.T) {
	records := []entity.LineRecord{
		rec("o1", "c1", "Anillos", "Guatemala", 2024, 1, 300, 100),
		rec("o2", "c2", "Collares", "Guatemala", 2024, 1, 100, 30),
	}

	segments := segmentBreakdown(records)
	require.Len(t, segments, 2)

	// sorted by sales, colors assigned after sorting
	assert.Equal(t, "Anillos", segments[0].Name)
	assert.Equal(t, 75.0, segments[0].Share)
	assert.Equal(t, colorPalette[0], segments[0].Color)

	assert.Equal(t, "Collares", segments[1].Name)
	assert.Equal(t, 25.0, segments[1].Share)
	assert.Equal(t, colorPalette[1], segments[1].Color)
}

func TestRegionBreakdown(t *testing.T) {
	records := []entity.LineRecord{
		rec("o1", "c1", "Anillos", "Mixco", 2024, 1, 80, 10),
		rec("o2", "c2", "Anillos", "Guatemala", 2024, 1, 300, 90),
		rec("o3", "c3", "Anillos", "Mixco", 2024, 1, 20, 5),
	}

	regions := regionBreakdown(records)
	require.Len(t, regions, 2)
	assert.Equal(t, "Guatemala", regions[0].Region)
	assert.Equal(t, "Mixco", regions[1].Region)
	assert.Equal(t, "100", regions[1].Sales.String())
}

func TestTopClients(t *testing.T) {
	placed := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		{ID: "1", ClientID: "c1", Placed: &placed},
		{ID: "2", ClientID: "c1"},
		{ID: "3", ClientID: "c2", Total: dec(999)}, // no line records, stated total wins
		{ID: "", ClientID: "c3"},
	}
	records := []entity.LineRecord{
		rec("1", "c1", "Anillos", "Guatemala", 2024, 4, 400, 100),
		rec("2", "c1", "Anillos", "Guatemala", 2024, 4, 100, 20),
	}
	ix := buildIndex(orders, nil, nil, []entity.Client{{ID: "c1", Name: "María"}}, nil, nil, nil)

	clients := topClients(orders, rollupOrders(records), ix)
	require.Len(t, clients, 2)

	assert.Equal(t, "c2", clients[0].ClientID)
	assert.Equal(t, "999", clients[0].Total.String())

	assert.Equal(t, "María", clients[1].Name)
	assert.Equal(t, "500", clients[1].Total.String())
	assert.Equal(t, 2, clients[1].Purchases)
	assert.Equal(t, "2024-04-02", clients[1].LastPurchase)
}

func TestTopClientsTruncated(t *testing.T) {
	var orders []entity.Order
	for i := 0; i < 8; i++ {
		orders = append(orders, entity.Order{
			ID:       string(rune('a' + i)),
			ClientID: string(rune('A' + i)),
			Total:    dec(float64(100 + i)),
		})
	}
	ix := buildIndex(orders, nil, nil, nil, nil, nil, nil)

	clients := topClients(orders, rollupOrders(nil), ix)
	assert.Len(t, clients, topClientCount)
	// highest stated total first
	assert.Equal(t, "H", clients[0].ClientID)
}

func TestRecentOrders(t *testing.T) {
	d1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		{ID: "1", ClientID: "c1", Placed: &d1, Status: "en_proceso"},
		{ID: "2", ClientID: "c1", Placed: &d2},
		{ID: "3", ClientID: "c2", Total: dec(75)},
	}
	records := []entity.LineRecord{
		rec("2", "c1", "Anillos", "Guatemala", 2024, 6, 250, 60),
	}
	records[0].Product = "Collar"
	ix := buildIndex(orders, nil, nil, nil, nil, nil, nil)

	recents := recentOrders(orders, rollupOrders(records), ix)
	require.Len(t, recents, 3)

	// newest first, undated orders last
	assert.Equal(t, "ORD-002", recents[0].Code)
	assert.Equal(t, "Collar", recents[0].Product)
	assert.Equal(t, "250", recents[0].Total.String())
	assert.Equal(t, "Pendiente", recents[0].Status)
	assert.Equal(t, "2024-06-01", recents[0].Date)

	assert.Equal(t, "ORD-001", recents[1].Code)
	assert.Equal(t, "En Proceso", recents[1].Status)

	assert.Equal(t, "ORD-003", recents[2].Code)
	assert.Equal(t, "—", recents[2].Product)
	assert.Equal(t, "75", recents[2].Total.String())
	assert.Equal(t, "", recents[2].Date)
}

func TestLowStockProducts(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Name: "Anillo", Stock: 2},
		{ID: "p2", Name: "Collar", Stock: 8},
		{ID: "p3", Name: "Pulsera", Stock: 15},
		{ID: "p4", Name: "Dije", Stock: 16},
		{ID: "p5", Name: "Arete", Stock: 9},
	}

	low := lowStockProducts(products)
	require.Len(t, low, 4)

	assert.Equal(t, "Anillo", low[0].Name)
	assert.Equal(t, "low", low[0].Level)
	assert.Equal(t, "medium", low[1].Level)
	assert.Equal(t, "ok", low[2].Level)
	assert.Equal(t, "ok", low[3].Level)
}

func TestMovementSummaries(t *testing.T) {
	movements := []entity.InventoryMovement{
		{ProductID: "p1", Type: "entrada", Quantity: dec(10)},
		{ProductID: "p1", Type: "salida", Quantity: dec(4)},
		{ProductID: "p1", Type: "ajuste", Quantity: dec(1)},
		{ProductID: "p2", Type: "in", Quantity: dec(3)},
		{ProductID: "", Type: "entrada", Quantity: dec(99)},
	}

	summaries := movementSummaries(movements)
	require.Len(t, summaries, 2)

	assert.Equal(t, "p1", summaries[0].ProductID)
	assert.Equal(t, "10", summaries[0].Inbound.String())
	assert.Equal(t, "5", summaries[0].Outbound.String())
	assert.Equal(t, "3", summaries[1].Inbound.String())
}

func TestReturnReasons(t *testing.T) {
	reasons := returnReasons([]entity.Return{
		{OrderLineID: "5", Reason: "producto_dañado"},
		{OrderLineID: "6"},
		{OrderLineID: ""},
	})

	assert.Equal(t, map[string]string{
		"5": "Producto Dañado",
		"6": "Sin motivo",
	}, reasons)
}
