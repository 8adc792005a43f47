package normalize

import (
	"testing"

	"github.com/jadegt/joyeria-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDecode(t *testing.T) {
	o := Order(Row{
		"orden_id":   float64(12),
		"cliente_id": "3",
		"cupon_id":   nil,
		"estado":     "en_proceso",
		"total":      "Q1,500.00",
		"fecha":      "2024-06-01",
	})

	assert.Equal(t, "12", o.ID)
	assert.Equal(t, "3", o.ClientID)
	assert.Equal(t, "", o.CouponID)
	assert.Equal(t, "en_proceso", o.Status)
	assert.True(t, decimal.NewFromInt(1500).Equal(o.Total))
	require.NotNil(t, o.Placed)
	assert.Equal(t, 2024, o.Placed.Year())
}

func TestOrderDecodeEnglishAliases(t *testing.T) {
	o := Order(Row{
		"order_id":   7,
		"client_id":  5,
		"status":     "paid",
		"created_at": "2024-01-10T08:00:00Z",
	})
	assert.Equal(t, "7", o.ID)
	assert.Equal(t, "5", o.ClientID)
	require.NotNil(t, o.Placed)
}

func TestOrderLineDecode(t *testing.T) {
	t.Run("unit price present", func(t *testing.T) {
		line := OrderLine(Row{
			"orden_detalle_id": 1,
			"orden_id":         2,
			"producto_id":      3,
			"cantidad":         2,
			"precio_unitario":  "250.00",
		})
		assert.True(t, line.HasUnitPrice)
		assert.True(t, decimal.NewFromInt(250).Equal(line.UnitPrice))
		assert.True(t, decimal.NewFromInt(2).Equal(line.Quantity))
	})

	t.Run("unit price absent", func(t *testing.T) {
		line := OrderLine(Row{"orden_id": 2, "producto_id": 3, "cantidad": 1})
		assert.False(t, line.HasUnitPrice)
	})

	t.Run("unit price garbage falls back", func(t *testing.T) {
		line := OrderLine(Row{"orden_id": 2, "producto_id": 3, "cantidad": 1, "precio_unitario": "n/a"})
		assert.False(t, line.HasUnitPrice)
	})
}

func TestCouponDecode(t *testing.T) {
	c := Coupon(Row{
		"id":          10,
		"tipo":        "Porcentaje",
		"valor":       15,
		"MinSubtotal": 500,
		"Activo":      1,
	})
	assert.Equal(t, "10", c.ID)
	assert.Equal(t, entity.CouponPercentage, c.Kind)
	assert.True(t, decimal.NewFromInt(15).Equal(c.Value))
	assert.True(t, decimal.NewFromInt(500).Equal(c.MinSubtotal))
	assert.True(t, c.Active)

	flat := Coupon(Row{"id": 11, "tipo": "monto", "valor": 100, "Activo": "si"})
	assert.Equal(t, entity.CouponFlat, flat.Kind)
	assert.True(t, flat.Active)

	unknown := Coupon(Row{"id": 12, "tipo": "2x1", "valor": 1})
	assert.Equal(t, entity.CouponUnknown, unknown.Kind)
	assert.False(t, unknown.Active)
}

func TestAddressDecode(t *testing.T) {
	a := Address(Row{
		"direccion_id": 1,
		"cliente_id":   4,
		"tipo":         "Envio",
		"direccion":    "5a Avenida 8-90, Zona 4",
	})
	assert.Equal(t, "4", a.ClientID)
	assert.Equal(t, "envio", a.Type)
	assert.Equal(t, "5a Avenida 8-90, Zona 4", a.Address)
}

func TestMappingValidate(t *testing.T) {
	t.Run("empty batch is silent", func(t *testing.T) {
		assert.Nil(t, OrderMapping.Validate(nil))
		assert.Nil(t, OrderMapping.Validate([]Row{}))
	})

	t.Run("populated batch is silent", func(t *testing.T) {
		rows := []Row{{"orden_id": 1, "cliente_id": 2}}
		assert.Empty(t, OrderMapping.Validate(rows))
	})

	t.Run("dead required field warns", func(t *testing.T) {
		rows := []Row{
			{"orden_id": 1, "estado": "pagado"},
			{"orden_id": 2, "estado": "pendiente"},
		}
		warnings := OrderMapping.Validate(rows)
		require.Len(t, warnings, 1)
		assert.Equal(t, "orden: no populated alias for client_id", warnings[0])
	})

	t.Run("field populated in any row passes", func(t *testing.T) {
		rows := []Row{
			{"orden_id": 1},
			{"orden_id": 2, "cliente_id": 9},
		}
		assert.Empty(t, OrderMapping.Validate(rows))
	})
}
