package invoicing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-api/internal/domain/invoicing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Normalize — formas de entrada
// ──────────────────────────────────────────────────────────────────────────────

// Forma moderna: unit_cost + quantity → line_total se calcula.
func TestNormalize_FormaUnitCost(t *testing.T) {
	item := invoicing.Normalize(invoicing.RawLineItem{
		Name:     "Diseño",
		UnitCost: decPtr(t, "100"),
		Quantity: dec(t, "2"),
	})

	assert.Equal(t, "Diseño", item.Name)
	assert.True(t, item.UnitCost.Equal(dec(t, "100")), "unit_cost debe conservarse")
	assert.True(t, item.LineTotal.Equal(dec(t, "200")), "line_total = unit_cost * quantity")
}

// Forma legada: line_total + quantity sin unit_cost → se deriva el costo unitario.
func TestNormalize_FormaLegadaDerivaUnitCost(t *testing.T) {
	item := invoicing.Normalize(invoicing.RawLineItem{
		Name:      "Servicio",
		Quantity:  dec(t, "3"),
		LineTotal: decPtr(t, "300"),
	})

	assert.True(t, item.UnitCost.Equal(dec(t, "100")), "unit_cost = line_total / quantity")
	assert.True(t, item.LineTotal.Equal(dec(t, "300")), "line_total se recalcula al mismo valor")
}

// Si llegan ambos campos, unit_cost manda y el line_total recibido se ignora.
func TestNormalize_UnitCostAutoritativoSobreLineTotal(t *testing.T) {
	item := invoicing.Normalize(invoicing.RawLineItem{
		Name:      "Hosting",
		UnitCost:  decPtr(t, "50"),
		Quantity:  dec(t, "2"),
		LineTotal: decPtr(t, "999999"), // valor malicioso o desactualizado
	})

	assert.True(t, item.UnitCost.Equal(dec(t, "50")))
	assert.True(t, item.LineTotal.Equal(dec(t, "100")),
		"el line_total del cliente nunca se confía; siempre se recalcula")
}

// Sin campos monetarios → unit_cost 0; el validador rechazará después.
func TestNormalize_SinCamposMonetarios(t *testing.T) {
	item := invoicing.Normalize(invoicing.RawLineItem{
		Name:     "Vacía",
		Quantity: dec(t, "4"),
	})

	assert.True(t, item.UnitCost.IsZero())
	assert.True(t, item.LineTotal.IsZero())
}

// quantity == 0 con solo line_total → división por cero protegida, no NaN/Inf.
func TestNormalize_DivisionPorCeroProtegida(t *testing.T) {
	item := invoicing.Normalize(invoicing.RawLineItem{
		Name:      "Rara",
		Quantity:  decimal.Zero,
		LineTotal: decPtr(t, "100"),
	})

	assert.True(t, item.UnitCost.IsZero(), "no se deriva unit_cost con quantity 0")
	assert.True(t, item.LineTotal.IsZero())
}

// Idempotencia: re-normalizar una línea canónica reconstruida da el mismo line_total.
func TestNormalize_Idempotencia(t *testing.T) {
	original := invoicing.Normalize(invoicing.RawLineItem{
		Name:     "Consultoría",
		UnitCost: decPtr(t, "37.50"),
		Quantity: dec(t, "4"),
	})

	reNormalizada := invoicing.Normalize(invoicing.RawLineItem{
		Name:     original.Name,
		UnitCost: &original.UnitCost,
		Quantity: original.Quantity,
	})

	assert.True(t, reNormalizada.LineTotal.Equal(original.LineTotal),
		"normalizar la forma canónica debe devolver el mismo line_total")
}

// NormalizeAll preserva el orden de entrada.
func TestNormalizeAll_PreservaOrden(t *testing.T) {
	raw := []invoicing.RawLineItem{
		{Name: "A", UnitCost: decPtr(t, "1"), Quantity: dec(t, "1")},
		{Name: "B", UnitCost: decPtr(t, "2"), Quantity: dec(t, "1")},
		{Name: "C", UnitCost: decPtr(t, "3"), Quantity: dec(t, "1")},
	}

	items := invoicing.NormalizeAll(raw)

	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, "B", items[1].Name)
	assert.Equal(t, "C", items[2].Name)
}
