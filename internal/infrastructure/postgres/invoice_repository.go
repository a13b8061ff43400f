package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/facturas-api/internal/domain/entity"
	"github.com/tu-usuario/facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Las líneas se serializan a JSON en la columna items; el total va como
// NUMERIC y viaja como decimal gracias al codec registrado en el pool.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura nueva con sus líneas.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO invoices (id, owner_id, client_id, title, items, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		invoice.ID, invoice.OwnerID, invoice.ClientID, invoice.Title,
		string(items), invoice.Total, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura completa por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, owner_id, client_id, title, items, total, created_at, updated_at
		FROM invoices WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ListByOwner lista las facturas del usuario, más recientes primero.
func (r *InvoiceRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, owner_id, client_id, title, items, total, created_at, updated_at
		FROM invoices WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Replace sustituye título, cliente, líneas y total de la factura.
func (r *InvoiceRepo) Replace(invoice *entity.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		UPDATE invoices
		SET client_id = $2, title = $3, items = $4, total = $5, updated_at = $6
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		invoice.ID, invoice.ClientID, invoice.Title, string(items),
		invoice.Total, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *InvoiceRepo) scanOne(row pgx.Row) (*entity.Invoice, error) {
	inv, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepo) scanRow(row rowScanner) (*entity.Invoice, error) {
	var inv entity.Invoice
	var items string
	if err := row.Scan(
		&inv.ID, &inv.OwnerID, &inv.ClientID, &inv.Title,
		&items, &inv.Total, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	if err := json.Unmarshal([]byte(items), &inv.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &inv, nil
}
