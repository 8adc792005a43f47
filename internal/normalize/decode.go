package normalize

import (
	"strings"

	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// Decoders turn raw rows into normalized entities. A row with no usable
// primary key decodes into a zero-id entity that callers drop.

func Order(row Row) entity.Order {
	return entity.Order{
		ID:       OrderMapping.Key(row, "id"),
		ClientID: OrderMapping.Key(row, "client_id"),
		CouponID: OrderMapping.Key(row, "coupon_id"),
		Status:   OrderMapping.String(row, "status", ""),
		Total:    OrderMapping.Number(row, "total", decimal.Zero),
		Placed:   OrderMapping.Date(row, "date"),
	}
}

func OrderLine(row Row) entity.OrderLine {
	line := entity.OrderLine{
		ID:        OrderLineMapping.Key(row, "id"),
		OrderID:   OrderLineMapping.Key(row, "order_id"),
		ProductID: OrderLineMapping.Key(row, "product_id"),
		Quantity:  OrderLineMapping.Number(row, "quantity", decimal.Zero),
		Date:      OrderLineMapping.Date(row, "date"),
	}
	if raw, ok := OrderLineMapping.Raw(row, "unit_price"); ok {
		if d, parsed := toDecimal(raw); parsed {
			line.UnitPrice = d
			line.HasUnitPrice = true
		}
	}
	return line
}

func Product(row Row) entity.Product {
	return entity.Product{
		ID:         ProductMapping.Key(row, "id"),
		Name:       ProductMapping.String(row, "name", ""),
		CategoryID: ProductMapping.Key(row, "category_id"),
		Price:      ProductMapping.Number(row, "price", decimal.Zero),
		Stock:      ProductMapping.Int(row, "stock", 0),
	}
}

func Category(row Row) entity.Category {
	return entity.Category{
		ID:   CategoryMapping.Key(row, "id"),
		Name: CategoryMapping.String(row, "name", ""),
	}
}

func Client(row Row) entity.Client {
	return entity.Client{
		ID:    ClientMapping.Key(row, "id"),
		Name:  ClientMapping.String(row, "name", ""),
		Email: ClientMapping.String(row, "email", ""),
		Phone: ClientMapping.String(row, "phone", ""),
	}
}

func Address(row Row) entity.Address {
	return entity.Address{
		ID:       AddressMapping.Key(row, "id"),
		ClientID: AddressMapping.Key(row, "client_id"),
		Type:     strings.ToLower(AddressMapping.String(row, "type", "")),
		Address:  AddressMapping.String(row, "address", ""),
	}
}

func Coupon(row Row) entity.Coupon {
	return entity.Coupon{
		ID:          CouponMapping.Key(row, "id"),
		Kind:        couponKind(CouponMapping.String(row, "type", "")),
		Value:       CouponMapping.Number(row, "value", decimal.Zero),
		MinSubtotal: CouponMapping.Number(row, "min_subtotal", decimal.Zero),
		Active:      CouponMapping.Bool(row, "active"),
	}
}

func couponKind(raw string) entity.CouponKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "porcentaje", "percentage", "percent":
		return entity.CouponPercentage
	case "monto", "flat", "amount", "fijo":
		return entity.CouponFlat
	default:
		return entity.CouponUnknown
	}
}

func SupplierCost(row Row) entity.SupplierCost {
	return entity.SupplierCost{
		SupplierID: SupplierCostMapping.Key(row, "supplier_id"),
		ProductID:  SupplierCostMapping.Key(row, "product_id"),
		Cost:       SupplierCostMapping.Number(row, "cost", decimal.Zero),
	}
}

func InventoryMovement(row Row) entity.InventoryMovement {
	return entity.InventoryMovement{
		ProductID: MovementMapping.Key(row, "product_id"),
		Quantity:  MovementMapping.Number(row, "quantity", decimal.Zero),
		Type:      strings.ToLower(MovementMapping.String(row, "type", "")),
	}
}

func Return(row Row) entity.Return {
	return entity.Return{
		OrderLineID: ReturnMapping.Key(row, "line_id"),
		Reason:      ReturnMapping.String(row, "reason", ""),
	}
}
