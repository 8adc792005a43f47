package report

import (
	"testing"

	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestRegionFor(t *testing.T) {
	ix := buildIndex(nil, nil, nil, nil, []entity.Address{
		{ClientID: "zone", Type: "envio", Address: "5a Avenida 8-90, Zona 4"},
		{ClientID: "city", Type: "envio", Address: "Calle Principal 1, Mixco"},
		{ClientID: "pref", Type: "facturacion", Address: "Oficina 2, Antigua"},
		{ClientID: "pref", Type: "envio", Address: "Bodega 7, Escuintla"},
		{ClientID: "blank", Type: "envio", Address: ""},
		{ClientID: "commas", Type: "envio", Address: " , , "},
		{ClientID: "single", Type: "envio", Address: "Zona 10"},
	}, nil, nil)

	t.Run("zone marker picks previous token", func(t *testing.T) {
		assert.Equal(t, "5a Avenida 8-90", ix.regionFor("zone"))
	})

	t.Run("last token wins", func(t *testing.T) {
		assert.Equal(t, "Mixco", ix.regionFor("city"))
	})

	t.Run("shipping address preferred", func(t *testing.T) {
		assert.Equal(t, "Escuintla", ix.regionFor("pref"))
	})

	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, DefaultRegion, ix.regionFor(""))
		assert.Equal(t, DefaultRegion, ix.regionFor("unknown"))
		assert.Equal(t, DefaultRegion, ix.regionFor("blank"))
		assert.Equal(t, DefaultRegion, ix.regionFor("commas"))
	})

	t.Run("lone zone token passes through", func(t *testing.T) {
		assert.Equal(t, "Zona 10", ix.regionFor("single"))
	})
}

func TestMinCost(t *testing.T) {
	ix := buildIndex(nil, nil, nil, nil, nil, []entity.SupplierCost{
		{SupplierID: "s1", ProductID: "p1", Cost: dec(120)},
		{SupplierID: "s2", ProductID: "p1", Cost: dec(95)},
		{SupplierID: "s3", ProductID: "p1", Cost: dec(95)},
		{SupplierID: "s1", ProductID: ""},
	}, nil)

	assert.True(t, dec(95).Equal(ix.minCost["p1"]))
	_, ok := ix.minCost[""]
	assert.False(t, ok)
}

func TestIndexSkipsEmptyIDsAndKeepsLastDuplicate(t *testing.T) {
	ix := buildIndex(
		[]entity.Order{{ID: ""}, {ID: "1", Status: "first"}, {ID: "1", Status: "second"}},
		[]entity.Product{{ID: ""}, {ID: "p1", Name: "Anillo"}},
		nil, nil, nil, nil, nil,
	)

	assert.Len(t, ix.orders, 1)
	assert.Equal(t, "second", ix.orders["1"].Status)
	assert.Len(t, ix.products, 1)
}

func TestNameFallbacks(t *testing.T) {
	ix := buildIndex(nil,
		[]entity.Product{{ID: "p1", Name: "Anillo", CategoryID: "c1"}, {ID: "p2"}},
		[]entity.Category{{ID: "c1", Name: "Anillos"}},
		[]entity.Client{{ID: "c1", Name: "María"}},
		nil, nil, nil,
	)

	assert.Equal(t, "Anillos", ix.segmentFor(ix.products["p1"]))
	assert.Equal(t, "Sin categoría", ix.segmentFor(ix.products["p2"]))

	assert.Equal(t, "María", ix.clientName("c1"))
	assert.Equal(t, "Cliente 9", ix.clientName("9"))

	assert.Equal(t, "Anillo", ix.productName(ix.products["p1"]))
	assert.Equal(t, "Producto p2", ix.productName(ix.products["p2"]))
}
