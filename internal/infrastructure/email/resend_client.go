// Package email implementa el envío del correo de factura usando la API
// REST de Resend. El cuerpo HTML se renderiza con html/template y los
// montos se formatean según el locale configurado.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/facturas-api/internal/application/billing"
	"golang.org/x/text/language"
)

const resendEndpoint = "https://api.resend.com/emails"

// Config del mailer.
type Config struct {
	APIKey    string
	FromEmail string // remitente autorizado en Resend
	Locale    string // BCP 47, ej: fr-FR; controla el formato de los montos
}

var _ billing.InvoiceMailer = (*ResendMailer)(nil)

// ResendMailer implementa billing.InvoiceMailer contra la API de Resend.
// Usa net/http de la stdlib; el endpoint responde en segundos, así que
// basta un timeout corto.
type ResendMailer struct {
	cfg        Config
	tag        language.Tag
	httpClient *http.Client
}

// NewResendMailer construye el mailer. Si el locale no parsea se usa
// francés (el público original de la aplicación).
func NewResendMailer(cfg Config) *ResendMailer {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.French
	}
	return &ResendMailer{
		cfg:        cfg,
		tag:        tag,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ── Payloads de la API Resend ─────────────────────────────────────────────────

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

type resendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// SendInvoice renderiza el HTML de la factura y lo entrega vía Resend.
// Retorna el ID de entrega asignado por el proveedor.
func (m *ResendMailer) SendInvoice(ctx context.Context, in billing.InvoiceEmail) (string, error) {
	html, err := RenderInvoiceHTML(in, m.tag)
	if err != nil {
		return "", fmt.Errorf("renderizar correo: %w", err)
	}

	payload := resendRequest{
		From:    fmt.Sprintf("%s <%s>", in.SenderName, m.cfg.FromEmail),
		To:      []string{in.To},
		Subject: fmt.Sprintf("Facture #%s - %s", in.InvoiceID, in.Title),
		HTML:    html,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("serializar petición: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llamar API Resend: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("leer respuesta Resend: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr resendError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("resend %d (%s): %s", resp.StatusCode, apiErr.Name, apiErr.Message)
		}
		return "", fmt.Errorf("resend %d: %s", resp.StatusCode, string(respBody))
	}

	var out resendResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decodificar respuesta Resend: %w", err)
	}
	return out.ID, nil
}
