package repository

import "github.com/tu-usuario/facturas-api/internal/domain/entity"

// BankInfoRepository define el puerto de persistencia para BankInfo.
type BankInfoRepository interface {
	// GetByOwner retorna los datos bancarios del usuario, o nil si no hay.
	GetByOwner(ownerID string) (*entity.BankInfo, error)
	// Upsert crea o reemplaza los datos bancarios del usuario (un registro
	// por OwnerID).
	Upsert(info *entity.BankInfo) error
}
