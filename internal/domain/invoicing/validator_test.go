package invoicing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-api/internal/domain/invoicing"
)

func item(t *testing.T, name, unitCost, quantity string) invoicing.LineItem {
	t.Helper()
	return invoicing.Normalize(invoicing.RawLineItem{
		Name:     name,
		UnitCost: decPtr(t, unitCost),
		Quantity: dec(t, quantity),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Validate
// ──────────────────────────────────────────────────────────────────────────────

// Todas las líneas válidas → sin errores, todas retornadas en orden.
func TestValidate_TodasValidas(t *testing.T) {
	items := []invoicing.LineItem{
		item(t, "Diseño", "100", "2"),
		item(t, "Hosting", "50", "1"),
	}

	valid, errs := invoicing.Validate(items)

	assert.Empty(t, errs)
	require.Len(t, valid, 2)
	assert.Equal(t, "Diseño", valid[0].Name)
	assert.Equal(t, "Hosting", valid[1].Name)
}

// Nombre vacío → EMPTY_NAME en el índice correcto y línea excluida.
func TestValidate_NombreVacio(t *testing.T) {
	valid, errs := invoicing.Validate([]invoicing.LineItem{
		item(t, "", "10", "1"),
	})

	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].Index)
	assert.Equal(t, invoicing.KindEmptyName, errs[0].Kind)
	assert.Empty(t, valid)
}

// Nombre de solo espacios cuenta como vacío (se recorta antes de chequear).
func TestValidate_NombreSoloEspacios(t *testing.T) {
	_, errs := invoicing.Validate([]invoicing.LineItem{
		item(t, "   \t ", "10", "1"),
	})

	require.Len(t, errs, 1)
	assert.Equal(t, invoicing.KindEmptyName, errs[0].Kind)
}

// Costo negativo → NON_POSITIVE_COST en el índice 0.
func TestValidate_CostoNegativo(t *testing.T) {
	valid, errs := invoicing.Validate([]invoicing.LineItem{
		item(t, "X", "-5", "2"),
	})

	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].Index)
	assert.Equal(t, invoicing.KindNonPositiveCost, errs[0].Kind)
	assert.Empty(t, valid)
}

// Cantidad no entera → NON_POSITIVE_QUANTITY (el chequeo exige entero positivo).
func TestValidate_CantidadNoEntera(t *testing.T) {
	_, errs := invoicing.Validate([]invoicing.LineItem{
		item(t, "Horas", "80", "2.5"),
	})

	require.Len(t, errs, 1)
	assert.Equal(t, invoicing.KindNonPositiveQuantity, errs[0].Kind)
}

// Una línea con varios fallos acumula TODOS sus errores, no solo el primero.
func TestValidate_AcumulaTodosLosErroresDeUnaLinea(t *testing.T) {
	valid, errs := invoicing.Validate([]invoicing.LineItem{
		item(t, "", "0", "0"),
	})

	require.Len(t, errs, 3, "deben reportarse los tres fallos de la misma línea")
	assert.Equal(t, invoicing.KindEmptyName, errs[0].Kind)
	assert.Equal(t, invoicing.KindNonPositiveCost, errs[1].Kind)
	assert.Equal(t, invoicing.KindNonPositiveQuantity, errs[2].Kind)
	for _, e := range errs {
		assert.Equal(t, 0, e.Index)
	}
	assert.Empty(t, valid)
}

// No se corta en la primera línea inválida: se revisa la secuencia completa.
func TestValidate_NoCortaEnPrimeraLineaInvalida(t *testing.T) {
	valid, errs := invoicing.Validate([]invoicing.LineItem{
		item(t, "", "10", "1"),       // índice 0: nombre vacío
		item(t, "Buena", "20", "2"),  // índice 1: válida
		item(t, "Mala", "-1", "1"),   // índice 2: costo negativo
	})

	require.Len(t, errs, 2)
	assert.Equal(t, 0, errs[0].Index)
	assert.Equal(t, 2, errs[1].Index)

	// La línea válida del medio sobrevive, en su posición relativa.
	require.Len(t, valid, 1)
	assert.Equal(t, "Buena", valid[0].Name)
}

// Solidez: toda línea en valid cumple los tres invariantes (sin falsos positivos).
func TestValidate_Solidez(t *testing.T) {
	mixtas := []invoicing.LineItem{
		item(t, "OK-1", "10", "1"),
		item(t, "", "10", "1"),
		item(t, "OK-2", "0.01", "9999"),
		item(t, "Mal", "5", "0"),
	}

	valid, _ := invoicing.Validate(mixtas)

	for _, v := range valid {
		assert.NotEmpty(t, strings.TrimSpace(v.Name))
		assert.True(t, v.UnitCost.IsPositive())
		assert.True(t, v.Quantity.IsPositive())
		assert.True(t, v.Quantity.IsInteger())
	}
}

// Completitud: toda línea que viola un chequeo aparece en errs y no en valid.
func TestValidate_Completitud(t *testing.T) {
	items := []invoicing.LineItem{
		item(t, "", "1", "1"),
		item(t, "A", "-2", "1"),
		item(t, "B", "3", "-4"),
	}

	valid, errs := invoicing.Validate(items)

	assert.Empty(t, valid)
	require.Len(t, errs, 3)
	indices := map[int]bool{}
	for _, e := range errs {
		indices[e.Index] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, indices)
}
