package repository

import "github.com/tu-usuario/facturas-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// GetByOwnerAndName busca un cliente por nombre dentro del tenant.
	GetByOwnerAndName(ownerID, name string) (*entity.Client, error)
	// ListByOwner lista los clientes del usuario, más recientes primero.
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
