package invoicing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de ensamblado.
var (
	// ErrMissingField indica título vacío o referencia de cliente ausente.
	ErrMissingField = errors.New("invoicing: título y cliente son requeridos")
	// ErrNoItems indica una factura sin líneas. Una factura requiere al
	// menos una línea; se rechaza antes de validar.
	ErrNoItems = errors.New("invoicing: la factura requiere al menos una línea")
)

// InvalidItemsError agrupa todos los fallos de validación de una factura.
// La política es todo-o-nada: con una sola línea inválida se rechaza la
// factura completa, en vez de descartar líneas en silencio — un documento
// financiero no puede perder líneas sin que nadie lo note.
type InvalidItemsError struct {
	Errors []ValidationError
}

func (e *InvalidItemsError) Error() string {
	return fmt.Sprintf("invoicing: %d error(es) de validación en las líneas", len(e.Errors))
}

// Invoice es el valor ensamblado e internamente consistente que el caller
// persiste o envía por correo. Total es siempre derivado; jamás se acepta
// un total suministrado por el cliente.
type Invoice struct {
	Title     string
	ClientRef string
	Items     []LineItem
}

// Total retorna la suma de LineTotal de las líneas. Se recalcula sobre el
// valor ensamblado, cuyas líneas ya pasaron validación.
func (inv *Invoice) Total() (decimal.Decimal, error) {
	return ComputeTotal(inv.Items)
}

// Assemble ejecuta el pipeline completo: normalizar → validar → calcular
// total → ensamblar. Es una función pura; no toca red ni almacenamiento.
//
// Fallos posibles, siempre como valores:
//   - ErrMissingField: título vacío (tras recortar espacios) o clientRef ausente.
//   - ErrNoItems: secuencia de líneas vacía.
//   - *InvalidItemsError: una o más líneas inválidas (con todos los fallos).
//   - ErrInternalInvariant: defecto aguas arriba detectado por el cálculo.
//
// Si no hay error, las líneas del Invoice quedan en el orden de entrada
// y todas son válidas (la validación no descartó ninguna, porque con
// cualquier descarte se rechaza todo).
func Assemble(title, clientRef string, raw []RawLineItem) (*Invoice, error) {
	title = strings.TrimSpace(title)
	clientRef = strings.TrimSpace(clientRef)
	if title == "" || clientRef == "" {
		return nil, ErrMissingField
	}
	if len(raw) == 0 {
		return nil, ErrNoItems
	}

	items := NormalizeAll(raw)
	valid, errs := Validate(items)
	if len(errs) > 0 {
		return nil, &InvalidItemsError{Errors: errs}
	}

	// Sanity check del invariante antes de entregar el valor.
	if _, err := ComputeTotal(valid); err != nil {
		return nil, err
	}

	return &Invoice{
		Title:     title,
		ClientRef: clientRef,
		Items:     valid,
	}, nil
}
