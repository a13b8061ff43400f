package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/facturas-api/internal/application/dto"
	"github.com/tu-usuario/facturas-api/internal/domain"
	"github.com/tu-usuario/facturas-api/internal/domain/entity"
	"github.com/tu-usuario/facturas-api/internal/domain/invoicing"
	"github.com/tu-usuario/facturas-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso CRUD de facturas. Toda creación o
// actualización pasa por el pipeline de ensamblado (invoicing.Assemble);
// el total nunca se acepta de la petición.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, clientRepo repository.ClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

// Create ensambla y persiste una factura nueva.
// Los errores de invoicing (ErrMissingField, ErrNoItems, *InvalidItemsError)
// se retornan tal cual para que el handler los convierta en respuestas.
func (uc *InvoiceUseCase) Create(ownerID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	client, err := uc.ownedClient(ownerID, in.ClientID)
	if err != nil {
		return nil, err
	}

	assembled, err := invoicing.Assemble(in.Title, in.ClientID, in.Items)
	if err != nil {
		return nil, err
	}
	total, err := assembled.Total()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		ClientID:  in.ClientID,
		Title:     assembled.Title,
		Items:     toEntityItems(assembled.Items),
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, client.Name), nil
}

// Update reensambla la factura con las nuevas entradas y la reemplaza
// completa. Nunca se parchean campos sueltos: actualizar es "recomputar
// una factura nueva a partir de las entradas nuevas".
func (uc *InvoiceUseCase) Update(ownerID, invoiceID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.ownedInvoice(ownerID, invoiceID)
	if err != nil {
		return nil, err
	}
	client, err := uc.ownedClient(ownerID, in.ClientID)
	if err != nil {
		return nil, err
	}

	assembled, err := invoicing.Assemble(in.Title, in.ClientID, in.Items)
	if err != nil {
		return nil, err
	}
	total, err := assembled.Total()
	if err != nil {
		return nil, err
	}

	inv := &entity.Invoice{
		ID:        existing.ID,
		OwnerID:   existing.OwnerID,
		ClientID:  in.ClientID,
		Title:     assembled.Title,
		Items:     toEntityItems(assembled.Items),
		Total:     total,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}
	if err := uc.invoiceRepo.Replace(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, client.Name), nil
}

// List lista las facturas del usuario, más recientes primero.
func (uc *InvoiceUseCase) List(ownerID string, limit, offset int) ([]*dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.invoiceRepo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv, ""))
	}
	return out, nil
}

// GetByID obtiene una factura del usuario, con el nombre del cliente.
func (uc *InvoiceUseCase) GetByID(ownerID, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.ownedInvoice(ownerID, invoiceID)
	if err != nil {
		return nil, err
	}
	clientName := ""
	if client, err := uc.clientRepo.GetByID(inv.ClientID); err == nil && client != nil {
		clientName = client.Name
	}
	return toInvoiceResponse(inv, clientName), nil
}

// Delete elimina una factura del usuario.
func (uc *InvoiceUseCase) Delete(ownerID, invoiceID string) error {
	if _, err := uc.ownedInvoice(ownerID, invoiceID); err != nil {
		return err
	}
	return uc.invoiceRepo.Delete(invoiceID)
}

// ownedInvoice carga la factura y verifica la tenencia.
func (uc *InvoiceUseCase) ownedInvoice(ownerID, invoiceID string) (*entity.Invoice, error) {
	if invoiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}

// ownedClient carga el cliente y verifica la tenencia.
func (uc *InvoiceUseCase) ownedClient(ownerID, clientID string) (*entity.Client, error) {
	if clientID == "" {
		return nil, invoicing.ErrMissingField
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	// Un cliente ajeno responde igual que uno inexistente para no
	// revelar qué IDs existen en otros tenants.
	if client == nil || client.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func toEntityItems(items []invoicing.LineItem) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, len(items))
	for i, it := range items {
		out[i] = entity.InvoiceItem{
			Name:      it.Name,
			UnitCost:  it.UnitCost,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal,
		}
	}
	return out
}

func toInvoiceResponse(inv *entity.Invoice, clientName string) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = dto.InvoiceItemResponse{
			Name:      it.Name,
			UnitCost:  it.UnitCost,
			Quantity:  it.Quantity,
			LineTotal: invoicing.FormatAmount(it.LineTotal),
		}
	}
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		ClientID:   inv.ClientID,
		ClientName: clientName,
		Title:      inv.Title,
		Items:      items,
		Total:      invoicing.FormatAmount(inv.Total),
		CreatedAt:  inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  inv.UpdatedAt.Format(time.RFC3339),
	}
}
