package invoicing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-api/internal/domain/invoicing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Assemble — pipeline completo normalizar → validar → total
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: dos líneas válidas → total 250.00.
func TestAssemble_FacturaValida(t *testing.T) {
	raw := []invoicing.RawLineItem{
		{Name: "Diseño", UnitCost: decPtr(t, "100"), Quantity: dec(t, "2")},
		{Name: "Hosting", UnitCost: decPtr(t, "50"), Quantity: dec(t, "1")},
	}

	inv, err := invoicing.Assemble("Sitio web corporativo", "client-123", raw)

	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, "Sitio web corporativo", inv.Title)
	assert.Equal(t, "client-123", inv.ClientRef)
	require.Len(t, inv.Items, 2, "las líneas se conservan completas y en orden")
	assert.Equal(t, "Diseño", inv.Items[0].Name)
	assert.Equal(t, "Hosting", inv.Items[1].Name)

	total, err := inv.Total()
	require.NoError(t, err)
	assert.Equal(t, "250.00", invoicing.FormatAmount(total))
}

// Forma legada en el pipeline completo: line_total 300 con quantity 3.
func TestAssemble_FormaLegada(t *testing.T) {
	raw := []invoicing.RawLineItem{
		{Name: "Servicio", Quantity: dec(t, "3"), LineTotal: decPtr(t, "300")},
	}

	inv, err := invoicing.Assemble("Mantenimiento", "client-9", raw)

	require.NoError(t, err)
	assert.True(t, inv.Items[0].UnitCost.Equal(dec(t, "100")))
	assert.True(t, inv.Items[0].LineTotal.Equal(dec(t, "300")))
}

// Todo-o-nada: una línea inválida rechaza la factura completa; el caller
// nunca recibe una factura con menos líneas de las que envió.
func TestAssemble_TodoONada(t *testing.T) {
	raw := []invoicing.RawLineItem{
		{Name: "Válida", UnitCost: decPtr(t, "10"), Quantity: dec(t, "1")},
		{Name: "", UnitCost: decPtr(t, "5"), Quantity: dec(t, "2")}, // inválida
	}

	inv, err := invoicing.Assemble("Parcial", "client-1", raw)

	assert.Nil(t, inv, "no debe producirse factura parcial")
	var invalidErr *invoicing.InvalidItemsError
	require.ErrorAs(t, err, &invalidErr)
	require.Len(t, invalidErr.Errors, 1)
	assert.Equal(t, 1, invalidErr.Errors[0].Index)
	assert.Equal(t, invoicing.KindEmptyName, invalidErr.Errors[0].Kind)
}

// El error agrupa los fallos de todas las líneas, no solo de la primera.
func TestAssemble_AgrupaTodosLosErrores(t *testing.T) {
	raw := []invoicing.RawLineItem{
		{Name: "", UnitCost: decPtr(t, "10"), Quantity: dec(t, "1")},
		{Name: "X", UnitCost: decPtr(t, "-5"), Quantity: dec(t, "2")},
	}

	_, err := invoicing.Assemble("Título", "client-1", raw)

	var invalidErr *invoicing.InvalidItemsError
	require.ErrorAs(t, err, &invalidErr)
	require.Len(t, invalidErr.Errors, 2)
	assert.Equal(t, invoicing.KindEmptyName, invalidErr.Errors[0].Kind)
	assert.Equal(t, invoicing.KindNonPositiveCost, invalidErr.Errors[1].Kind)
}

// Título vacío o cliente ausente → ErrMissingField.
func TestAssemble_CamposRequeridos(t *testing.T) {
	raw := []invoicing.RawLineItem{
		{Name: "A", UnitCost: decPtr(t, "1"), Quantity: dec(t, "1")},
	}

	_, err := invoicing.Assemble("", "client-1", raw)
	assert.ErrorIs(t, err, invoicing.ErrMissingField)

	_, err = invoicing.Assemble("   ", "client-1", raw)
	assert.ErrorIs(t, err, invoicing.ErrMissingField, "título de solo espacios cuenta como vacío")

	_, err = invoicing.Assemble("Título", "", raw)
	assert.ErrorIs(t, err, invoicing.ErrMissingField)
}

// Sin líneas → ErrNoItems (regla explícita: al menos una línea por factura).
func TestAssemble_SinLineas(t *testing.T) {
	_, err := invoicing.Assemble("Título", "client-1", nil)
	assert.ErrorIs(t, err, invoicing.ErrNoItems)

	_, err = invoicing.Assemble("Título", "client-1", []invoicing.RawLineItem{})
	assert.ErrorIs(t, err, invoicing.ErrNoItems)
}

// El total jamás se toma del cliente: aunque cada línea traiga un
// line_total inflado, el ensamblado lo recalcula desde unit_cost.
func TestAssemble_TotalSiempreDerivado(t *testing.T) {
	raw := []invoicing.RawLineItem{
		{Name: "A", UnitCost: decPtr(t, "10"), Quantity: dec(t, "2"), LineTotal: decPtr(t, "5000")},
	}

	inv, err := invoicing.Assemble("Título", "client-1", raw)

	require.NoError(t, err)
	total, err := inv.Total()
	require.NoError(t, err)
	assert.Equal(t, "20.00", invoicing.FormatAmount(total))
}
