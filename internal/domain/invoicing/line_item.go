// Package invoicing contiene los servicios de dominio puros para el
// ensamblado de facturas: normalización de líneas, validación, cálculo
// del total y ensamblado final. Ninguna función tiene efectos secundarios
// ni dependencias de infraestructura; todos los errores se retornan como
// valores para que los handlers los conviertan en respuestas HTTP.
package invoicing

import "github.com/shopspring/decimal"

// RawLineItem es una línea de factura tal como llega del exterior.
// Admite dos formas: la moderna con costo unitario (unit_cost + quantity)
// y la legada con total precalculado (line_total + quantity, sin unit_cost).
// Si llegan ambos campos, unit_cost es autoritativo y line_total se descarta.
type RawLineItem struct {
	Name      string           `json:"name"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"`
	Quantity  decimal.Decimal  `json:"quantity"`
	LineTotal *decimal.Decimal `json:"line_total,omitempty"`
}

// LineItem es la forma canónica de una línea tras la normalización.
// LineTotal siempre es exactamente UnitCost * Quantity.
type LineItem struct {
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Quantity  decimal.Decimal `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// itemShape identifica la forma de entrada de una línea. Se resuelve una
// sola vez para que el switch de normalización sea exhaustivo.
type itemShape int

const (
	shapeUnitCost  itemShape = iota // unit_cost presente (autoritativo)
	shapeLineTotal                  // solo line_total presente (forma legada)
	shapeEmpty                      // sin campos monetarios
)

func (r RawLineItem) shape() itemShape {
	switch {
	case r.UnitCost != nil:
		return shapeUnitCost
	case r.LineTotal != nil:
		return shapeLineTotal
	default:
		return shapeEmpty
	}
}

// Normalize convierte una línea cruda a la forma canónica. Nunca retorna
// error: un campo ausente o inservible se normaliza a cero y es el
// validador quien lo rechaza después.
//
// Reglas:
//   - unit_cost presente → se usa tal cual.
//   - solo line_total y quantity > 0 → unit_cost = line_total / quantity.
//   - en cualquier otro caso → unit_cost = 0 (incluye quantity <= 0 con
//     line_total, para no propagar una división por cero).
//   - line_total SIEMPRE se recalcula como unit_cost * quantity,
//     independientemente de la forma de entrada.
func Normalize(raw RawLineItem) LineItem {
	var unitCost decimal.Decimal
	switch raw.shape() {
	case shapeUnitCost:
		unitCost = *raw.UnitCost
	case shapeLineTotal:
		if raw.Quantity.IsPositive() {
			unitCost = raw.LineTotal.Div(raw.Quantity)
		}
	case shapeEmpty:
		// unitCost queda en cero; el validador reportará NonPositiveCost
	}
	return LineItem{
		Name:      raw.Name,
		UnitCost:  unitCost,
		Quantity:  raw.Quantity,
		LineTotal: unitCost.Mul(raw.Quantity),
	}
}

// NormalizeAll normaliza una secuencia completa preservando el orden.
func NormalizeAll(raw []RawLineItem) []LineItem {
	items := make([]LineItem, len(raw))
	for i, r := range raw {
		items[i] = Normalize(r)
	}
	return items
}
