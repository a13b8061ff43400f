package invoicing

import (
	"fmt"
	"strings"
)

// ErrorKind clasifica el fallo de validación de una línea. Los valores
// coinciden con los códigos que la API expone en las respuestas de error.
type ErrorKind string

const (
	KindEmptyName           ErrorKind = "EMPTY_NAME"
	KindNonPositiveCost     ErrorKind = "NON_POSITIVE_COST"
	KindNonPositiveQuantity ErrorKind = "NON_POSITIVE_QUANTITY"
)

// ValidationError señala un fallo concreto en la línea con índice Index
// (posición en la secuencia de entrada, base 0).
type ValidationError struct {
	Index int       `json:"index"`
	Kind  ErrorKind `json:"kind"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("línea %d: %s", e.Index, e.Kind)
}

// Validate revisa cada línea canónica y acumula TODOS los fallos
// encontrados, en vez de cortar en el primero: la corrección de una
// factura necesita la lista completa de problemas de una sola vez.
//
// Chequeos por línea, en este orden fijo:
//  1. nombre no vacío tras recortar espacios → KindEmptyName
//  2. costo unitario > 0                     → KindNonPositiveCost
//  3. cantidad > 0 y entera                  → KindNonPositiveQuantity
//
// Retorna la subsecuencia (en orden original) de líneas que pasan los
// tres chequeos, más la lista de errores. Una línea con algún fallo se
// excluye por completo; nunca se retorna parcheada. La política de qué
// hacer con los errores (rechazar todo o filtrar) es del caller.
func Validate(items []LineItem) (valid []LineItem, errs []ValidationError) {
	valid = make([]LineItem, 0, len(items))
	for i, item := range items {
		ok := true
		if strings.TrimSpace(item.Name) == "" {
			errs = append(errs, ValidationError{Index: i, Kind: KindEmptyName})
			ok = false
		}
		if !item.UnitCost.IsPositive() {
			errs = append(errs, ValidationError{Index: i, Kind: KindNonPositiveCost})
			ok = false
		}
		if !item.Quantity.IsPositive() || !item.Quantity.IsInteger() {
			errs = append(errs, ValidationError{Index: i, Kind: KindNonPositiveQuantity})
			ok = false
		}
		if ok {
			valid = append(valid, item)
		}
	}
	return valid, errs
}
