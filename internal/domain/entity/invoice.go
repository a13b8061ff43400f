package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem representa una línea de factura en forma canónica.
// LineTotal siempre es UnitCost * Quantity; se recalcula en el ensamblado,
// nunca se acepta del cliente.
type InvoiceItem struct {
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Quantity  decimal.Decimal `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Invoice representa la cabecera de una factura con sus líneas.
// Las líneas se persisten como JSON (columna items) igual que el total
// derivado; Total siempre es la suma de LineTotal de las líneas.
type Invoice struct {
	ID        string
	OwnerID   string
	ClientID  string
	Title     string
	Items     []InvoiceItem
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
