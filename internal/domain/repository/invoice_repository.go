package repository

import "github.com/tu-usuario/facturas-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// Las líneas viajan dentro de la entidad (columna JSON); no hay tabla de
// detalle separada.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// ListByOwner lista las facturas del usuario, más recientes primero.
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Invoice, error)
	// Replace sustituye título, cliente, líneas y total de la factura.
	// La actualización es siempre un reensamblado completo, nunca un
	// parcheo de campos sueltos.
	Replace(invoice *entity.Invoice) error
	Delete(id string) error
}
