package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/facturas-api/internal/application/dto"
	"github.com/tu-usuario/facturas-api/internal/domain"
	"github.com/tu-usuario/facturas-api/internal/domain/entity"
	"github.com/tu-usuario/facturas-api/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes del usuario emisor.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un nuevo cliente. Nombre, email y dirección son requeridos.
func (uc *ClientUseCase) Create(ownerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	address := strings.TrimSpace(in.Address)
	if name == "" || email == "" || address == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByOwnerAndName(ownerID, name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		Email:     email,
		Address:   address,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista los clientes del usuario, más recientes primero.
func (uc *ClientUseCase) List(ownerID string, limit, offset int) ([]*dto.ClientResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// GetByName obtiene un cliente del usuario por nombre exacto.
func (uc *ClientUseCase) GetByName(ownerID, name string) (*dto.ClientResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByOwnerAndName(ownerID, name)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del usuario.
func (uc *ClientUseCase) Delete(ownerID, clientID string) error {
	if clientID == "" {
		return domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if client.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(clientID)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
