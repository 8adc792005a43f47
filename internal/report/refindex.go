package report

import (
	"strings"

	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// DefaultRegion is the label used when no usable address exists for a client.
const DefaultRegion = "Guatemala"

// refIndex holds the per-run lookup maps. Every aggregation run builds a
// fresh index from its own snapshot; nothing here is shared across runs.
type refIndex struct {
	orders     map[string]entity.Order
	products   map[string]entity.Product
	categories map[string]entity.Category
	clients    map[string]entity.Client
	coupons    map[string]entity.Coupon

	// addresses preserves insertion order per client for the region guess.
	addresses map[string][]entity.Address

	// minCost keeps the minimum supplier cost per product, first-seen on ties.
	minCost map[string]decimal.Decimal
}

func buildIndex(
	orders []entity.Order,
	products []entity.Product,
	categories []entity.Category,
	clients []entity.Client,
	addresses []entity.Address,
	costs []entity.SupplierCost,
	coupons []entity.Coupon,
) *refIndex {
	ix := &refIndex{
		orders:     make(map[string]entity.Order, len(orders)),
		products:   make(map[string]entity.Product, len(products)),
		categories: make(map[string]entity.Category, len(categories)),
		clients:    make(map[string]entity.Client, len(clients)),
		coupons:    make(map[string]entity.Coupon, len(coupons)),
		addresses:  make(map[string][]entity.Address),
		minCost:    make(map[string]decimal.Decimal),
	}

	for _, o := range orders {
		if o.ID != "" {
			ix.orders[o.ID] = o
		}
	}
	for _, p := range products {
		if p.ID != "" {
			ix.products[p.ID] = p
		}
	}
	for _, c := range categories {
		if c.ID != "" {
			ix.categories[c.ID] = c
		}
	}
	for _, c := range clients {
		if c.ID != "" {
			ix.clients[c.ID] = c
		}
	}
	for _, c := range coupons {
		if c.ID != "" {
			ix.coupons[c.ID] = c
		}
	}
	for _, a := range addresses {
		if a.ClientID != "" {
			ix.addresses[a.ClientID] = append(ix.addresses[a.ClientID], a)
		}
	}
	for _, sc := range costs {
		if sc.ProductID == "" {
			continue
		}
		if cur, ok := ix.minCost[sc.ProductID]; !ok || sc.Cost.LessThan(cur) {
			ix.minCost[sc.ProductID] = sc.Cost
		}
	}
	return ix
}

// segmentFor resolves the category name for a product, with the literal
// uncategorized label when the category does not resolve.
func (ix *refIndex) segmentFor(p entity.Product) string {
	if c, ok := ix.categories[p.CategoryID]; ok && c.Name != "" {
		return c.Name
	}
	return "Sin categoría"
}

func (ix *refIndex) clientName(id string) string {
	if c, ok := ix.clients[id]; ok && c.Name != "" {
		return c.Name
	}
	return "Cliente " + id
}

func (ix *refIndex) productName(p entity.Product) string {
	if p.Name != "" {
		return p.Name
	}
	return "Producto " + p.ID
}

// regionFor derives the coarse region label from the client's addresses:
// a shipping-typed address wins over the first listed one, the address
// text is split on commas and the last token is taken unless it carries a
// zone marker, in which case the second-to-last token is used.
func (ix *refIndex) regionFor(clientID string) string {
	if clientID == "" {
		return DefaultRegion
	}
	entries := ix.addresses[clientID]
	if len(entries) == 0 {
		return DefaultRegion
	}

	chosen := entries[0]
	for _, a := range entries {
		if a.Type == "envio" || a.Type == "shipping" {
			chosen = a
			break
		}
	}
	if chosen.Address == "" {
		return DefaultRegion
	}

	var parts []string
	for _, p := range strings.Split(chosen.Address, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return DefaultRegion
	}

	last := parts[len(parts)-1]
	if hasZoneMarker(last) && len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return last
}

func hasZoneMarker(token string) bool {
	lower := strings.ToLower(token)
	return strings.Contains(lower, "zona") || strings.Contains(lower, "zone")
}
