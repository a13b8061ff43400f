package dto

import "github.com/tu-usuario/facturas-api/internal/domain/invoicing"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InvalidItemsResponse cuerpo de error para facturas con líneas inválidas.
// Items trae TODOS los fallos (índice + código) para que el frontend los
// muestre de una sola vez.
type InvalidItemsResponse struct {
	Code    string                      `json:"code"`
	Message string                      `json:"message"`
	Items   []invoicing.ValidationError `json:"items"`
}
