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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, name, status, created_at, updated_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// FindByEmail obtiene un usuario por email (para login).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, name, status, created_at, updated_at
		FROM users WHERE email = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}
