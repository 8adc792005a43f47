package report

// Logical table names shared by both backends. The aggregation run fetches
// the full set so the dashboard can report per-table row counts even for
// tables the pipeline itself does not fold.
const (
	TableOrders             = "orden"
	TableOrderLines         = "orden_detalle"
	TableProducts           = "producto"
	TableCategories         = "categoria"
	TableClients            = "cliente"
	TableAddresses          = "direccion_cliente"
	TableCoupons            = "cupon"
	TableSuppliers          = "proveedor"
	TableSupplierCosts      = "proveedor_producto"
	TableInventoryMovements = "inventario_movimiento"
	TableReturns            = "devolucion"
	TablePayments           = "pago"
	TableOrderPayments      = "orden_metodo_pago"
	TablePaymentMethods     = "metodo_pago"
	TablePaymentReceipts    = "comprobante_pago"
	TablePurchases          = "compra"
	TablePurchaseDetails    = "compra_detalle"
	TableShippers           = "transportista"
	TableShipments          = "envio"
	TableShipmentDetails    = "envio_detalle"
)

// AllTables lists every logical table fetched per aggregation run.
var AllTables = []string{
	TableOrders,
	TableOrderLines,
	TableProducts,
	TableCategories,
	TableClients,
	TableAddresses,
	TableCoupons,
	TableSuppliers,
	TableSupplierCosts,
	TableInventoryMovements,
	TableReturns,
	TablePayments,
	TableOrderPayments,
	TablePaymentMethods,
	TablePaymentReceipts,
	TablePurchases,
	TablePurchaseDetails,
	TableShippers,
	TableShipments,
	TableShipmentDetails,
}
