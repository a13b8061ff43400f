package invoicing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInternalInvariant indica que el cálculo observó un total negativo.
// Toda línea válida tiene LineTotal > 0, así que un total negativo solo
// puede venir de un defecto aguas arriba (no de la entrada del usuario);
// nunca se recorta en silencio.
var ErrInternalInvariant = errors.New("invoicing: total negativo, invariante violada aguas arriba")

// ComputeTotal suma LineTotal sobre las líneas dadas con aritmética
// decimal (sin deriva de punto flotante). No filtra: el caller debe pasar
// únicamente líneas ya validadas. Secuencia vacía → cero.
func ComputeTotal(items []LineItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	if total.IsNegative() {
		return decimal.Decimal{}, ErrInternalInvariant
	}
	return total, nil
}

// FormatAmount formatea un monto para presentación y persistencia:
// redondeo half-up a 2 decimales. Es el único punto donde se redondea;
// la acumulación se hace siempre a precisión completa.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
