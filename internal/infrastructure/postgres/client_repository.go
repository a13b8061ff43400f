package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/facturas-api/internal/domain"
	"github.com/tu-usuario/facturas-api/internal/domain/entity"
	"github.com/tu-usuario/facturas-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, owner_id, name, email, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.OwnerID, client.Name, client.Email, client.Address, client.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, owner_id, name, email, address, created_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Address, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// GetByOwnerAndName obtiene un cliente por nombre dentro del tenant.
func (r *ClientRepo) GetByOwnerAndName(ownerID, name string) (*entity.Client, error) {
	query := `
		SELECT id, owner_id, name, email, address, created_at
		FROM clients WHERE owner_id = $1 AND name = $2`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, ownerID, name).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Address, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by name: %w", err)
	}
	return &c, nil
}

// ListByOwner lista clientes del usuario, más recientes primero.
func (r *ClientRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, owner_id, name, email, address, created_at
		FROM clients WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
