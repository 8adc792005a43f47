package normalize

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Mapping declares, per logical table, which source column aliases feed
// each canonical field. The alias lists are ordered by priority and cover
// every schema variant seen across the two backends (Spanish snake_case,
// English snake_case and the odd camelCase column). Keeping the mapping
// explicit makes the fallback chain auditable: Validate reports required
// fields that no alias populates instead of silently reading zeroes.
type Mapping struct {
	Table    string
	Fields   map[string][]string
	Required []string
}

// Raw resolves a canonical field against the row, first populated alias wins.
func (m Mapping) Raw(row Row, field string) (any, bool) {
	return FirstAvailable(row, m.Fields[field]...)
}

// Key resolves a canonical field as a map key, empty when absent.
func (m Mapping) Key(row Row, field string) string {
	v, ok := m.Raw(row, field)
	if !ok {
		return ""
	}
	return Key(v)
}

// String resolves a canonical field as a string.
func (m Mapping) String(row Row, field, fallback string) string {
	v, ok := m.Raw(row, field)
	if !ok {
		return fallback
	}
	return ToString(v, fallback)
}

// Number resolves a canonical field as a decimal.
func (m Mapping) Number(row Row, field string, fallback decimal.Decimal) decimal.Decimal {
	v, ok := m.Raw(row, field)
	if !ok {
		return fallback
	}
	return ToNumber(v, fallback)
}

// Int resolves a canonical field as an int.
func (m Mapping) Int(row Row, field string, fallback int) int {
	v, ok := m.Raw(row, field)
	if !ok {
		return fallback
	}
	return ToInt(v, fallback)
}

// Bool resolves a canonical field as a bool, false when absent.
func (m Mapping) Bool(row Row, field string) bool {
	v, ok := m.Raw(row, field)
	if !ok {
		return false
	}
	return ToBool(v)
}

// Date resolves a canonical field as a date, nil when absent or unparseable.
func (m Mapping) Date(row Row, field string) *time.Time {
	v, ok := m.Raw(row, field)
	if !ok {
		return nil
	}
	return ParseDate(v)
}

// Validate checks a fetched batch once at load time: every required field
// must resolve in at least one row. Returns one warning per dead field.
func (m Mapping) Validate(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}
	var warnings []string
	for _, field := range m.Required {
		populated := false
		for _, row := range rows {
			if _, ok := m.Raw(row, field); ok {
				populated = true
				break
			}
		}
		if !populated {
			warnings = append(warnings, fmt.Sprintf("%s: no populated alias for %s", m.Table, field))
		}
	}
	return warnings
}

var (
	OrderMapping = Mapping{
		Table: "orden",
		Fields: map[string][]string{
			"id":        {"orden_id", "id", "order_id"},
			"client_id": {"cliente_id", "client_id", "clienteId"},
			"coupon_id": {"cupon_id", "coupon_id"},
			"status":    {"estado", "status"},
			"total":     {"total", "monto_total", "importe"},
			"date":      {"fecha", "fecha_creacion", "created_at", "fecha_registro", "fecha_pago"},
		},
		Required: []string{"id", "client_id"},
	}

	OrderLineMapping = Mapping{
		Table: "orden_detalle",
		Fields: map[string][]string{
			"id":         {"orden_detalle_id", "detalle_id", "id"},
			"order_id":   {"orden_id", "order_id", "id_orden"},
			"product_id": {"producto_id", "product_id"},
			"quantity":   {"cantidad", "quantity", "qty", "unidades"},
			"unit_price": {"precio_unitario", "precio", "price", "importe"},
			"date":       {"fecha", "created_at"},
		},
		Required: []string{"order_id", "product_id", "quantity"},
	}

	ProductMapping = Mapping{
		Table: "producto",
		Fields: map[string][]string{
			"id":          {"producto_id", "id", "product_id"},
			"name":        {"nombre", "name"},
			"category_id": {"categoria_id", "category_id"},
			"price":       {"precio", "price"},
			"stock":       {"stock", "cantidad"},
		},
		Required: []string{"id"},
	}

	CategoryMapping = Mapping{
		Table: "categoria",
		Fields: map[string][]string{
			"id":   {"categoria_id", "id", "category_id"},
			"name": {"nombre", "name"},
		},
		Required: []string{"id"},
	}

	ClientMapping = Mapping{
		Table: "cliente",
		Fields: map[string][]string{
			"id":    {"cliente_id", "id", "client_id"},
			"name":  {"nombre", "name"},
			"email": {"correo", "email"},
			"phone": {"telefono", "phone"},
		},
		Required: []string{"id"},
	}

	AddressMapping = Mapping{
		Table: "direccion_cliente",
		Fields: map[string][]string{
			"id":        {"direccion_id", "id"},
			"client_id": {"cliente_id", "client_id"},
			"type":      {"tipo", "type"},
			"address":   {"direccion", "address", "detalle", "linea", "line1"},
		},
		Required: []string{"client_id"},
	}

	CouponMapping = Mapping{
		Table: "cupon",
		Fields: map[string][]string{
			"id":           {"id", "cupon_id"},
			"type":         {"tipo", "type"},
			"value":        {"valor", "value"},
			"min_subtotal": {"MinSubtotal", "min_subtotal", "minimo"},
			"active":       {"Activo", "activo", "active"},
		},
		Required: []string{"id"},
	}

	SupplierCostMapping = Mapping{
		Table: "proveedor_producto",
		Fields: map[string][]string{
			"supplier_id": {"proveedor_id", "supplier_id"},
			"product_id":  {"producto_id", "product_id"},
			"cost":        {"costo", "cost", "precio"},
		},
		Required: []string{"product_id"},
	}

	MovementMapping = Mapping{
		Table: "inventario_movimiento",
		Fields: map[string][]string{
			"product_id": {"producto_id", "product_id"},
			"quantity":   {"cantidad", "quantity", "qty"},
			"type":       {"tipo", "type"},
		},
		Required: []string{"product_id"},
	}

	ReturnMapping = Mapping{
		Table: "devolucion",
		Fields: map[string][]string{
			"line_id": {"orden_detalle_id", "detalle_id"},
			"reason":  {"motivo", "reason"},
		},
		Required: []string{"line_id"},
	}
)
