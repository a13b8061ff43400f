package email

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-api/internal/application/billing"
	"github.com/tu-usuario/facturas-api/internal/domain/entity"
	"golang.org/x/text/language"
)

func sampleEmail(currency string) billing.InvoiceEmail {
	return billing.InvoiceEmail{
		InvoiceID:  "inv-001",
		Title:      "Site web corporatif",
		SenderName: "Studio Dupont",
		ClientName: "ACME SARL",
		To:         "compta@acme.example",
		Items: []entity.InvoiceItem{
			{
				Name:      "Design",
				UnitCost:  decimal.RequireFromString("100"),
				Quantity:  decimal.RequireFromString("2"),
				LineTotal: decimal.RequireFromString("200"),
			},
			{
				Name:      "Hébergement",
				UnitCost:  decimal.RequireFromString("50"),
				Quantity:  decimal.RequireFromString("1"),
				LineTotal: decimal.RequireFromString("50"),
			},
		},
		Total: decimal.RequireFromString("250"),
		Bank: entity.BankInfo{
			BankName:      "Banque Postale",
			AccountNumber: "FR76 1234 5678 9012",
			AccountName:   "Studio Dupont SARL",
			Currency:      currency,
		},
		CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

// El HTML incluye encabezado, cliente, líneas, datos bancarios y fecha.
func TestRenderInvoiceHTML_ContenidoCompleto(t *testing.T) {
	html, err := RenderInvoiceHTML(sampleEmail("EUR"), language.French)
	require.NoError(t, err)

	assert.Contains(t, html, "Facture #inv-001")
	assert.Contains(t, html, "Site web corporatif")
	assert.Contains(t, html, "Studio Dupont")
	assert.Contains(t, html, "Bonjour ACME SARL")
	assert.Contains(t, html, "Design")
	assert.Contains(t, html, "Hébergement")
	assert.Contains(t, html, "Banque Postale")
	assert.Contains(t, html, "FR76 1234 5678 9012")
	assert.Contains(t, html, "15/03/2024")
	assert.Contains(t, html, "€", "los montos EUR deben llevar símbolo de moneda")
}

// Moneda no ISO → degradación a "monto CODIGO" con 2 decimales fijos.
func TestRenderInvoiceHTML_MonedaDesconocida(t *testing.T) {
	html, err := RenderInvoiceHTML(sampleEmail("ABC"), language.French)
	require.NoError(t, err)

	assert.Contains(t, html, "250.00 ABC")
	assert.Contains(t, html, "200.00 ABC")
}

// El contenido de las líneas se escapa: un nombre con HTML no inyecta marcado.
func TestRenderInvoiceHTML_EscapaHTML(t *testing.T) {
	in := sampleEmail("EUR")
	in.Items[0].Name = `<script>alert("x")</script>`

	html, err := RenderInvoiceHTML(in, language.French)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.True(t, strings.Contains(html, "&lt;script&gt;"))
}
