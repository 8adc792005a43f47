package report

import (
	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// grossFloor avoids division by zero when an order's lines are all free.
var grossFloor = decimal.NewFromFloat(0.01)

var oneHundred = decimal.NewFromInt(100)

// allocator prorates order-level coupon discounts across the order's
// lines by gross-sales share. Only lines that resolve against both the
// order and product indices contribute to an order's gross total, which
// matches the line records the discount is later allocated to.
type allocator struct {
	gross    map[string]decimal.Decimal // per order, floored
	discount map[string]decimal.Decimal // per order, only positive entries
}

func newAllocator(lines []entity.OrderLine, ix *refIndex) *allocator {
	a := &allocator{
		gross:    make(map[string]decimal.Decimal),
		discount: make(map[string]decimal.Decimal),
	}

	for _, line := range lines {
		order, ok := ix.orders[line.OrderID]
		if !ok {
			continue
		}
		product, ok := ix.products[line.ProductID]
		if !ok {
			continue
		}
		a.gross[order.ID] = a.gross[order.ID].Add(lineGross(line, product))
	}

	for orderID, gross := range a.gross {
		if gross.LessThan(grossFloor) {
			gross = grossFloor
			a.gross[orderID] = gross
		}
		d := orderDiscount(ix.orders[orderID], gross, ix.coupons)
		if d.IsPositive() {
			a.discount[orderID] = d
		}
	}
	return a
}

// lineGross is quantity times unit price, falling back to the product
// list price when the line carries no usable price of its own.
func lineGross(line entity.OrderLine, product entity.Product) decimal.Decimal {
	price := line.UnitPrice
	if !line.HasUnitPrice {
		price = product.Price
	}
	return line.Quantity.Mul(price)
}

// orderDiscount evaluates the order's coupon against its gross total.
// Missing, inactive or below-minimum coupons yield zero, as do unknown
// coupon kinds.
func orderDiscount(order entity.Order, gross decimal.Decimal, coupons map[string]entity.Coupon) decimal.Decimal {
	if order.CouponID == "" {
		return decimal.Zero
	}
	c, ok := coupons[order.CouponID]
	if !ok || !c.Active {
		return decimal.Zero
	}
	if gross.LessThan(c.MinSubtotal) {
		return decimal.Zero
	}
	switch c.Kind {
	case entity.CouponPercentage:
		return gross.Mul(c.Value).Div(oneHundred)
	case entity.CouponFlat:
		return c.Value
	default:
		return decimal.Zero
	}
}

// orderTotalDiscount returns the order-level discount amount, zero when
// no coupon applied.
func (a *allocator) orderTotalDiscount(orderID string) decimal.Decimal {
	return a.discount[orderID]
}

// allocate returns the share of the order discount carried by one line,
// proportional to the line's share of the order's gross sales.
func (a *allocator) allocate(orderID string, lineGross decimal.Decimal) decimal.Decimal {
	d, ok := a.discount[orderID]
	if !ok {
		return decimal.Zero
	}
	gross := a.gross[orderID]
	if gross.LessThan(grossFloor) {
		gross = grossFloor
	}
	return d.Mul(lineGross).Div(gross)
}
