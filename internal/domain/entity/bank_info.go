package entity

import "time"

// BankInfo representa los datos bancarios del usuario, incluidos en los
// correos de factura para que el cliente sepa dónde pagar. Hay a lo sumo
// un registro por usuario (upsert por OwnerID).
type BankInfo struct {
	ID            string
	OwnerID       string
	BankName      string
	AccountNumber string
	AccountName   string
	Currency      string // código ISO 4217, ej: EUR, USD
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
