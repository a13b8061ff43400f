package invoicing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-api/internal/domain/invoicing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeTotal
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotal_SecuenciaVacia(t *testing.T) {
	total, err := invoicing.ComputeTotal(nil)

	require.NoError(t, err)
	assert.True(t, total.IsZero(), "secuencia vacía debe sumar cero")
}

func TestComputeTotal_SumaSimple(t *testing.T) {
	items := []invoicing.LineItem{
		item(t, "Diseño", "100", "2"),  // 200
		item(t, "Hosting", "50", "1"),  // 50
	}

	total, err := invoicing.ComputeTotal(items)

	require.NoError(t, err)
	assert.True(t, total.Equal(dec(t, "250")))
	assert.Equal(t, "250.00", invoicing.FormatAmount(total))
}

// Aditividad: total(a ++ b) == total(a) + total(b).
func TestComputeTotal_Aditividad(t *testing.T) {
	a := []invoicing.LineItem{
		item(t, "A1", "19.99", "3"),
		item(t, "A2", "0.10", "7"),
	}
	b := []invoicing.LineItem{
		item(t, "B1", "123.45", "2"),
	}

	totalA, err := invoicing.ComputeTotal(a)
	require.NoError(t, err)
	totalB, err := invoicing.ComputeTotal(b)
	require.NoError(t, err)
	totalAB, err := invoicing.ComputeTotal(append(append([]invoicing.LineItem{}, a...), b...))
	require.NoError(t, err)

	assert.True(t, totalAB.Equal(totalA.Add(totalB)))
}

// Sin deriva de punto flotante: 0.10 sumado 100 veces es exactamente 10.00.
// Con float64 esta suma da 9.999999999999998.
func TestComputeTotal_SinDerivaDecimal(t *testing.T) {
	items := make([]invoicing.LineItem, 100)
	for i := range items {
		items[i] = item(t, "Céntimos", "0.10", "1")
	}

	total, err := invoicing.ComputeTotal(items)

	require.NoError(t, err)
	assert.True(t, total.Equal(dec(t, "10.00")))
}

// Un total negativo solo puede venir de un defecto aguas arriba: se señala
// como error interno, nunca se recorta a cero.
func TestComputeTotal_NegativoEsErrorInterno(t *testing.T) {
	corrupta := invoicing.LineItem{
		Name:      "Corrupta",
		UnitCost:  dec(t, "10"),
		Quantity:  dec(t, "1"),
		LineTotal: dec(t, "-999"), // violación fabricada del invariante
	}

	_, err := invoicing.ComputeTotal([]invoicing.LineItem{corrupta})

	assert.ErrorIs(t, err, invoicing.ErrInternalInvariant)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FormatAmount — redondeo half-up a 2 decimales
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatAmount_RedondeoHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"250", "250.00"},
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.675", "2.68"}, // con float64 daría 2.67
		{"999999.995", "1000000.00"},
	}
	for _, c := range cases {
		got := invoicing.FormatAmount(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "entrada %s", c.in)
	}
}
