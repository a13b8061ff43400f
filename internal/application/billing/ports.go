package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-api/internal/domain/entity"
)

// InvoiceEmail datos ya consistentes para el correo de notificación.
// El total y los line_total vienen del ensamblado; el renderer solo
// formatea, nunca recalcula.
type InvoiceEmail struct {
	InvoiceID  string
	Title      string
	SenderName string
	ClientName string
	To         string // email del cliente
	Items      []entity.InvoiceItem
	Total      decimal.Decimal
	Bank       entity.BankInfo
	CreatedAt  time.Time
}

// InvoiceMailer define el puerto de salida para la entrega del correo de
// factura. La implementación concreta usa la API de Resend; para tests se
// puede inyectar un mock.
type InvoiceMailer interface {
	// SendInvoice renderiza y envía el correo. Retorna el ID de entrega
	// asignado por el proveedor.
	SendInvoice(ctx context.Context, in InvoiceEmail) (string, error)
}

// InvoicePDFGenerator define el puerto de salida para la representación
// imprimible de la factura. bank puede ser nil si el usuario aún no
// configuró sus datos bancarios.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, client *entity.Client, bank *entity.BankInfo) ([]byte, error)
}
