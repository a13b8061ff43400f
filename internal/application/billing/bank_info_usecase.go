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

// BankInfoUseCase casos de uso para los datos bancarios del usuario.
type BankInfoUseCase struct {
	repo repository.BankInfoRepository
}

// NewBankInfoUseCase construye el caso de uso.
func NewBankInfoUseCase(repo repository.BankInfoRepository) *BankInfoUseCase {
	return &BankInfoUseCase{repo: repo}
}

// Get retorna los datos bancarios del usuario. ErrNotFound si no hay.
func (uc *BankInfoUseCase) Get(ownerID string) (*dto.BankInfoResponse, error) {
	info, err := uc.repo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	return toBankInfoResponse(info), nil
}

// Upsert crea o reemplaza los datos bancarios. Todos los campos son
// requeridos: el correo de factura los incluye completos.
func (uc *BankInfoUseCase) Upsert(ownerID string, in dto.UpsertBankInfoRequest) (*dto.BankInfoResponse, error) {
	bankName := strings.TrimSpace(in.BankName)
	accountNumber := strings.TrimSpace(in.AccountNumber)
	accountName := strings.TrimSpace(in.AccountName)
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if bankName == "" || accountNumber == "" || accountName == "" || currency == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	info := &entity.BankInfo{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		BankName:      bankName,
		AccountNumber: accountNumber,
		AccountName:   accountName,
		Currency:      currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Upsert(info); err != nil {
		return nil, err
	}
	return toBankInfoResponse(info), nil
}

func toBankInfoResponse(b *entity.BankInfo) *dto.BankInfoResponse {
	return &dto.BankInfoResponse{
		BankName:      b.BankName,
		AccountNumber: b.AccountNumber,
		AccountName:   b.AccountName,
		Currency:      b.Currency,
	}
}
