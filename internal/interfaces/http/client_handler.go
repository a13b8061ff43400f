package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-api/internal/application/billing"
	"github.com/tu-usuario/facturas-api/internal/application/dto"
	"github.com/tu-usuario/facturas-api/internal/domain"
)

// ClientHandler maneja el CRUD de clientes del usuario autenticado.
type ClientHandler struct {
	uc *billing.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *billing.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create crea un cliente del usuario autenticado.
// POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Create(ownerID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y address son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un cliente con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List lista los clientes del usuario autenticado.
// GET /api/clients?limit=&offset=
func (h *ClientHandler) List(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	clients, err := h.uc.List(ownerID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(clients)
}

// GetByName busca un cliente del usuario por nombre exacto.
// GET /api/clients/by-name/:name
func (h *ClientHandler) GetByName(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	name := c.Params("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido"})
	}
	client, err := h.uc.GetByName(ownerID, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(client)
}

// Delete elimina un cliente del usuario autenticado.
// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Delete(ownerID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
