package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/facturas-api/internal/domain/entity"
	"github.com/tu-usuario/facturas-api/internal/domain/repository"
)

var _ repository.BankInfoRepository = (*BankInfoRepo)(nil)

// BankInfoRepo implementación de BankInfoRepository (usable con pool o tx).
type BankInfoRepo struct {
	q Querier
}

// NewBankInfoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBankInfoRepository(q Querier) *BankInfoRepo {
	return &BankInfoRepo{q: q}
}

// GetByOwner obtiene los datos bancarios del usuario (a lo sumo un registro).
func (r *BankInfoRepo) GetByOwner(ownerID string) (*entity.BankInfo, error) {
	query := `
		SELECT id, owner_id, bank_name, account_number, account_name, currency, created_at, updated_at
		FROM bank_info WHERE owner_id = $1`
	var b entity.BankInfo
	err := r.q.QueryRow(context.Background(), query, ownerID).Scan(
		&b.ID, &b.OwnerID, &b.BankName, &b.AccountNumber, &b.AccountName,
		&b.Currency, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank info: %w", err)
	}
	return &b, nil
}

// Upsert crea o reemplaza los datos bancarios del usuario. La tabla tiene
// constraint único sobre owner_id; el conflicto actualiza los campos.
func (r *BankInfoRepo) Upsert(info *entity.BankInfo) error {
	query := `
		INSERT INTO bank_info (id, owner_id, bank_name, account_number, account_name, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (owner_id) DO UPDATE
		SET bank_name = EXCLUDED.bank_name,
		    account_number = EXCLUDED.account_number,
		    account_name = EXCLUDED.account_name,
		    currency = EXCLUDED.currency,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		info.ID, info.OwnerID, info.BankName, info.AccountNumber, info.AccountName,
		info.Currency, info.CreatedAt, info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert bank info: %w", err)
	}
	return nil
}
