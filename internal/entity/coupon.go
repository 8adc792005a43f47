package entity

import "github.com/shopspring/decimal"

// CouponKind is the discount type carried by a coupon.
type CouponKind string

const (
	CouponPercentage CouponKind = "percentage"
	CouponFlat       CouponKind = "flat"
	CouponUnknown    CouponKind = "unknown"
)

// Coupon is a normalized row of the cupon table.
type Coupon struct {
	ID          string
	Kind        CouponKind
	Value       decimal.Decimal
	MinSubtotal decimal.Decimal
	Active      bool
}
