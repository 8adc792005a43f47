package entity

// Client is a normalized row of the cliente table.
type Client struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Address is a normalized row of the direccion_cliente table. Address is
// free text; the region label is derived from its last comma-separated
// tokens.
type Address struct {
	ID       string
	ClientID string
	Type     string
	Address  string
}
