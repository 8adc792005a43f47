package entity

import "github.com/shopspring/decimal"

// Product is a normalized row of the producto table.
type Product struct {
	ID         string
	Name       string
	CategoryID string
	Price      decimal.Decimal
	Stock      int
}

// Category is a normalized row of the categoria table. Category names
// double as the segment dimension in the aggregates.
type Category struct {
	ID   string
	Name string
}

// SupplierCost is a normalized row of the proveedor_producto table.
type SupplierCost struct {
	SupplierID string
	ProductID  string
	Cost       decimal.Decimal
}

// InventoryMovement is a normalized row of the inventario_movimiento table.
type InventoryMovement struct {
	ProductID string
	Quantity  decimal.Decimal
	Type      string
}

// Return is a normalized row of the devolucion table.
type Return struct {
	OrderLineID string
	Reason      string
}
