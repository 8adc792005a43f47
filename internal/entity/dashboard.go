package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyPoint is one entry of the monthly sales series, keyed by
// (year, month) and ordered chronologically.
type MonthlyPoint struct {
	Month       string          `json:"month"` // abbreviated month name
	Label       string          `json:"label"` // "Enero 2024"
	Year        int             `json:"year"`
	MonthNumber int             `json:"monthNumber"`
	Sales       decimal.Decimal `json:"ventas"`
	Profit      decimal.Decimal `json:"profit"`
	Orders      int             `json:"ordenes"`  // distinct orders in the month
	Clients     int             `json:"clientes"` // distinct clients in the month
}

// SegmentMetric aggregates sales by category name.
type SegmentMetric struct {
	Name   string          `json:"name"`
	Share  float64         `json:"value"` // percentage of total sales, one decimal
	Sales  decimal.Decimal `json:"ventas"`
	Profit decimal.Decimal `json:"profit"`
	Units  decimal.Decimal `json:"unidades"`
	Color  string          `json:"color"`
}

// RegionMetric aggregates sales by the region label guessed from client
// addresses.
type RegionMetric struct {
	Region string          `json:"region"`
	Sales  decimal.Decimal `json:"ventas"`
	Profit decimal.Decimal `json:"profit"`
}

// TopClient is one row of the top-clients view.
type TopClient struct {
	ClientID     string          `json:"id"`
	Name         string          `json:"nombre"`
	Purchases    int             `json:"compras"`
	Total        decimal.Decimal `json:"total"`
	LastPurchase string          `json:"ultimaCompra"` // ISO date or empty
}

// RecentOrder is one row of the recent-orders view.
type RecentOrder struct {
	Code    string          `json:"id"` // "ORD-001"
	Client  string          `json:"cliente"`
	Product string          `json:"producto"` // first product seen for the order
	Total   decimal.Decimal `json:"monto"`
	Status  string          `json:"estado"`
	Date    string          `json:"fecha"` // ISO date or empty
}

// LowStockProduct is one row of the low-stock view.
type LowStockProduct struct {
	Name  string `json:"nombre"`
	Stock int    `json:"stock"`
	Level string `json:"level"` // low, medium or ok
}

// MovementSummary totals inventory movements per product.
type MovementSummary struct {
	ProductID string          `json:"productId"`
	Inbound   decimal.Decimal `json:"entradas"`
	Outbound  decimal.Decimal `json:"salidas"`
}

// Summary holds the headline KPIs derived from the monthly series.
type Summary struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalOrders   int             `json:"totalOrders"`
	TotalClients  int             `json:"totalClients"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	SalesGrowth   float64         `json:"salesGrowth"`  // last vs previous month, percent
	OrdersGrowth  float64         `json:"ordersGrowth"` // last vs previous month, percent
}

// Dashboard is the full aggregation output for one run over a snapshot.
type Dashboard struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`

	Records []LineRecord `json:"records"`
	Summary Summary      `json:"metrics"`

	Monthly      []MonthlyPoint    `json:"salesData"`
	Segments     []SegmentMetric   `json:"productCategories"`
	Regions      []RegionMetric    `json:"countryTotals"`
	TopClients   []TopClient       `json:"topClients"`
	RecentOrders []RecentOrder     `json:"recentOrders"`
	LowStock     []LowStockProduct `json:"lowStockProducts"`
	Movements    []MovementSummary `json:"inventoryByProduct"`

	// ReturnReasons maps order-line ids to humanized return reasons.
	ReturnReasons map[string]string `json:"returnsByDetail"`

	// TableCounts reports how many rows each logical table contributed.
	TableCounts map[string]int `json:"tableCounts"`

	// Warnings carries "<table>: <message>" entries for failed fetches and
	// mapping validation notices. OrphanLines counts order lines dropped
	// because their order or product did not resolve.
	Warnings    []string `json:"warnings"`
	OrphanLines int      `json:"orphanLines"`
}
