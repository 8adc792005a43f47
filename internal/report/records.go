package report

import (
	"time"

	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// Discount bands bucket the per-line discount as a percent of gross.
// Boundary values belong to the higher bucket: exactly 30% is "30%+".
const (
	bandNone   = "0%"
	bandLow    = "1–9%"
	bandMid    = "10–19%"
	bandHigh   = "20–29%"
	bandSevere = "30%+"
)

func bandFromPct(pct float64) string {
	switch {
	case pct >= 30:
		return bandSevere
	case pct >= 20:
		return bandHigh
	case pct >= 10:
		return bandMid
	case pct > 0:
		return bandLow
	default:
		return bandNone
	}
}

type recordBuilder struct {
	ix    *refIndex
	alloc *allocator

	// fallbackMargin prices COGS when no supplier cost exists.
	fallbackMargin decimal.Decimal

	// now anchors records whose order and line both lack a date; a record
	// is never dropped for a missing date.
	now time.Time
}

// build walks the order lines in source order and emits one record per
// line whose order and product both resolve. Lines that do not resolve
// are dropped and counted as orphans.
func (b *recordBuilder) build(lines []entity.OrderLine) ([]entity.LineRecord, int) {
	records := make([]entity.LineRecord, 0, len(lines))
	orphans := 0

	for _, line := range lines {
		order, okOrder := b.ix.orders[line.OrderID]
		product, okProduct := b.ix.products[line.ProductID]
		if !okOrder || !okProduct {
			orphans++
			continue
		}

		price := line.UnitPrice
		if !line.HasUnitPrice {
			price = product.Price
		}
		gross := line.Quantity.Mul(price)
		discount := b.alloc.allocate(order.ID, gross)

		sales := gross.Sub(discount)
		if sales.IsNegative() {
			sales = decimal.Zero
		}

		cost := b.ix.minCost[product.ID]
		if !cost.IsPositive() {
			cost = price.Mul(b.fallbackMargin).Round(2)
		}
		cogs := cost.Mul(line.Quantity)
		profit := sales.Sub(cogs)

		pct := 0.0
		if gross.IsPositive() {
			pct = discount.Div(gross).Mul(oneHundred).InexactFloat64()
		}

		date := order.Placed
		if date == nil {
			date = line.Date
		}
		if date == nil {
			date = &b.now
		}
		monthNumber, monthName, monthAbbr, year := monthParts(*date)

		records = append(records, entity.LineRecord{
			OrderID:    order.ID,
			ClientID:   order.ClientID,
			ClientName: b.ix.clientName(order.ClientID),

			Product: b.ix.productName(product),
			Segment: b.ix.segmentFor(product),
			Country: b.ix.regionFor(order.ClientID),

			DiscountBand: bandFromPct(pct),

			UnitsSold:          line.Quantity,
			SalePrice:          price,
			ManufacturingPrice: cost,
			GrossSales:         gross.Round(2),
			Discounts:          discount.Round(2),
			Sales:              sales.Round(2),
			Cogs:               cogs.Round(2),
			Profit:             profit.Round(2),

			Date:        *date,
			MonthNumber: monthNumber,
			MonthName:   monthName,
			MonthAbbr:   monthAbbr,
			Year:        year,
		})
	}
	return records, orphans
}
