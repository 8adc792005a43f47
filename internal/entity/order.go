package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a normalized row of the orden table. All ids are kept as
// strings since the source backends disagree on numeric vs string keys.
type Order struct {
	ID       string
	ClientID string
	CouponID string
	Status   string
	Total    decimal.Decimal
	Placed   *time.Time
}

// OrderLine is a normalized row of the orden_detalle table.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	// HasUnitPrice is false when the source row carried no price alias,
	// in which case the product list price is used instead.
	HasUnitPrice bool
	Date         *time.Time
}
