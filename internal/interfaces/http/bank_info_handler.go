package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-api/internal/application/billing"
	"github.com/tu-usuario/facturas-api/internal/application/dto"
	"github.com/tu-usuario/facturas-api/internal/domain"
)

// BankInfoHandler maneja los datos bancarios del usuario autenticado.
// Cada usuario tiene a lo sumo un registro; PUT siempre hace upsert.
type BankInfoHandler struct {
	uc *billing.BankInfoUseCase
}

// NewBankInfoHandler construye el handler.
func NewBankInfoHandler(uc *billing.BankInfoUseCase) *BankInfoHandler {
	return &BankInfoHandler{uc: uc}
}

// Get devuelve los datos bancarios del usuario.
// GET /api/bank-info
func (h *BankInfoHandler) Get(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	info, err := h.uc.Get(ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "datos bancarios no configurados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(info)
}

// Upsert crea o reemplaza los datos bancarios del usuario.
// PUT /api/bank-info
func (h *BankInfoHandler) Upsert(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpsertBankInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	info, err := h.uc.Upsert(ownerID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bank_name, account_number, account_name y currency son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(info)
}
