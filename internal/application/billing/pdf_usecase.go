package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/facturas-api/internal/domain"
	"github.com/tu-usuario/facturas-api/internal/domain/repository"
)

// PDFUseCase genera la representación imprimible de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	bankRepo    repository.BankInfoRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	bankRepo repository.BankInfoRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		bankRepo:    bankRepo,
		generator:   generator,
	}
}

// Generate produce el PDF de la factura y un nombre de archivo sugerido.
// Los datos bancarios son opcionales en el PDF (pie de página).
func (uc *PDFUseCase) Generate(ctx context.Context, ownerID, invoiceID string) ([]byte, string, error) {
	if invoiceID == "" {
		return nil, "", domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	if inv.OwnerID != ownerID {
		return nil, "", domain.ErrForbidden
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, "", err
	}
	if client == nil {
		return nil, "", domain.ErrNotFound
	}
	bank, err := uc.bankRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, "", err
	}

	pdf, err := uc.generator.GenerateInvoicePDF(ctx, inv, client, bank)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("factura-%s.pdf", inv.ID), nil
}
