package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-api/internal/application/billing"
	"github.com/tu-usuario/facturas-api/internal/application/dto"
	"github.com/tu-usuario/facturas-api/internal/domain"
	"github.com/tu-usuario/facturas-api/internal/domain/invoicing"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	invoiceUC *billing.InvoiceUseCase
	sendUC    *billing.SendInvoiceUseCase
	pdfUC     *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(invoiceUC *billing.InvoiceUseCase, sendUC *billing.SendInvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, sendUC: sendUC, pdfUC: pdfUC}
}

// invoicingError traduce los errores del pipeline de ensamblado a HTTP.
// Devuelve (respuesta, true) si el error era del pipeline.
func invoicingError(c *fiber.Ctx, err error) (error, bool) {
	var invalid *invoicing.InvalidItemsError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.InvalidItemsResponse{
			Code:    "INVALID_ITEMS",
			Message: "una o más líneas de la factura son inválidas",
			Items:   invalid.Errors,
		}), true
	}
	if errors.Is(err, invoicing.ErrMissingField) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y client_id son requeridos"}), true
	}
	if errors.Is(err, invoicing.ErrNoItems) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la factura requiere al menos una línea"}), true
	}
	return nil, false
}

// Create ensambla y persiste una factura nueva.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.invoiceUC.Create(ownerID, in)
	if err != nil {
		if resp, ok := invoicingError(c, err); ok {
			return resp
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Update reensambla la factura completa con las nuevas entradas.
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.invoiceUC.Update(ownerID, id, in)
	if err != nil {
		if resp, ok := invoicingError(c, err); ok {
			return resp
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura o cliente no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

// List lista las facturas del usuario, más recientes primero.
// GET /api/invoices?limit=&offset=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	invoices, err := h.invoiceUC.List(ownerID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoices)
}

// GetByID obtiene el detalle de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	invoice, err := h.invoiceUC.GetByID(ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

// Delete elimina una factura del usuario.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.invoiceUC.Delete(ownerID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Send envía la factura por email al cliente.
// POST /api/invoices/:id/send
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	messageID, err := h.sendUC.Send(c.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		if errors.Is(err, domain.ErrBankInfoMissing) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BANK_INFO_MISSING", Message: "configura tus datos bancarios antes de enviar facturas"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_DISABLED", Message: "el envío de emails no está configurado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message_id": messageID})
}

// PDF genera el PDF de la factura y lo devuelve como adjunto.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdfBytes, filename, err := h.pdfUC.Generate(c.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
