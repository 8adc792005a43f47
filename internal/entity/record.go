package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineRecord is the derived sales fact computed for every order line that
// resolves against the reference indices. Money fields are rounded to two
// decimals the way the legacy reporting endpoint rounded them.
type LineRecord struct {
	OrderID    string `json:"orderId"`
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName"`

	Product string `json:"product"`
	Segment string `json:"segment"`
	Country string `json:"country"`

	DiscountBand string `json:"discountBand"`

	UnitsSold          decimal.Decimal `json:"unitsSold"`
	SalePrice          decimal.Decimal `json:"salePrice"`
	ManufacturingPrice decimal.Decimal `json:"manufacturingPrice"`
	GrossSales         decimal.Decimal `json:"grossSales"`
	Discounts          decimal.Decimal `json:"discounts"`
	Sales              decimal.Decimal `json:"sales"`
	Cogs               decimal.Decimal `json:"cogs"`
	Profit             decimal.Decimal `json:"profit"`

	Date        time.Time `json:"date"`
	MonthNumber int       `json:"monthNumber"`
	MonthName   string    `json:"monthName"`
	MonthAbbr   string    `json:"monthAbbr"`
	Year        int       `json:"year"`
}
