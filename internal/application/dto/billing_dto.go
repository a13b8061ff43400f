package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-api/internal/domain/invoicing"
)

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

// CreateInvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
// Las líneas llegan en forma cruda (con unit_cost o con line_total legado);
// el total NO se acepta del cliente: siempre se calcula en el servidor.
type CreateInvoiceRequest struct {
	ClientID string                  `json:"client_id"`
	Title    string                  `json:"title"`
	Items    []invoicing.RawLineItem `json:"items"`
}

// InvoiceItemResponse línea canónica en respuestas.
type InvoiceItemResponse struct {
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Quantity  decimal.Decimal `json:"quantity"`
	LineTotal string          `json:"line_total"` // 2 decimales fijos
}

// InvoiceResponse factura con líneas y total derivado.
type InvoiceResponse struct {
	ID         string                `json:"id"`
	ClientID   string                `json:"client_id"`
	ClientName string                `json:"client_name,omitempty"`
	Title      string                `json:"title"`
	Items      []InvoiceItemResponse `json:"items"`
	Total      string                `json:"total"` // 2 decimales fijos
	CreatedAt  string                `json:"created_at"`
	UpdatedAt  string                `json:"updated_at"`
}

// UpsertBankInfoRequest body para PUT /api/bank-info. Todos los campos
// son requeridos.
type UpsertBankInfoRequest struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Currency      string `json:"currency"`
}

// BankInfoResponse datos bancarios en respuestas.
type BankInfoResponse struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Currency      string `json:"currency"`
}
