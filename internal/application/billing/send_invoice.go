package billing

import (
	"context"

	"github.com/tu-usuario/facturas-api/internal/domain"
	"github.com/tu-usuario/facturas-api/internal/domain/repository"
)

// SendInvoiceUseCase envía la factura por correo al cliente. Reúne la
// factura, el cliente y los datos bancarios del emisor, y delega la
// entrega al puerto InvoiceMailer. El total y los line_total que se
// entregan son los persistidos por el ensamblado (suma consistente).
type SendInvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	bankRepo    repository.BankInfoRepository
	userRepo    repository.UserRepository
	mailer      InvoiceMailer
}

// NewSendInvoiceUseCase construye el caso de uso.
func NewSendInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo  repository.ClientRepository,
	bankRepo    repository.BankInfoRepository,
	userRepo    repository.UserRepository,
	mailer      InvoiceMailer,
) *SendInvoiceUseCase {
	return &SendInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		bankRepo:    bankRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

// Send envía la factura indicada. Requiere que el usuario tenga datos
// bancarios configurados (el correo indica dónde pagar); si no los hay
// retorna ErrBankInfoMissing.
func (uc *SendInvoiceUseCase) Send(ctx context.Context, ownerID, invoiceID string) (string, error) {
	if uc.mailer == nil {
		return "", domain.ErrConflict // envío deshabilitado (sin API key)
	}
	if invoiceID == "" {
		return "", domain.ErrInvalidInput
	}

	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return "", err
	}
	if inv == nil {
		return "", domain.ErrNotFound
	}
	if inv.OwnerID != ownerID {
		return "", domain.ErrForbidden
	}

	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", domain.ErrNotFound
	}

	bank, err := uc.bankRepo.GetByOwner(ownerID)
	if err != nil {
		return "", err
	}
	if bank == nil {
		return "", domain.ErrBankInfoMissing
	}

	sender, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return "", err
	}
	if sender == nil {
		return "", domain.ErrUserNotFound
	}

	return uc.mailer.SendInvoice(ctx, InvoiceEmail{
		InvoiceID:  inv.ID,
		Title:      inv.Title,
		SenderName: sender.Name,
		ClientName: client.Name,
		To:         client.Email,
		Items:      inv.Items,
		Total:      inv.Total,
		Bank:       *bank,
		CreatedAt:  inv.CreatedAt,
	})
}
