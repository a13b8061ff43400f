package email

import (
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-api/internal/application/billing"
	"github.com/tu-usuario/facturas-api/internal/domain/invoicing"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Plantilla del correo de factura. Misma estructura que la versión web:
// encabezado con el emisor, saludo, tabla de líneas, total y bloque de
// datos bancarios para el pago.
var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;background:#f4f4f7;font-family:Helvetica,Arial,sans-serif;color:#333">
  <div style="max-width:600px;margin:0 auto;background:#ffffff">
    <div style="background:#1a1a2e;padding:24px;text-align:center">
      <h1 style="color:#ffffff;margin:0;font-size:22px">{{.SenderName}}</h1>
      <p style="color:#9ca3af;margin:4px 0 0;font-size:13px">Facture professionnelle</p>
    </div>
    <div style="padding:24px">
      <h2 style="margin:0 0 12px;font-size:18px">Facture #{{.InvoiceID}} — {{.Title}}</h2>
      <p style="margin:0 0 4px">Bonjour {{.ClientName}},</p>
      <p style="margin:0 0 16px;color:#555">Veuillez trouver ci-dessous votre facture du {{.Date}}. Merci pour votre confiance.</p>
      <table style="width:100%;border-collapse:collapse;font-size:14px">
        <tr style="background:#f4f4f7">
          <th style="text-align:left;padding:8px">Article</th>
          <th style="text-align:right;padding:8px">Prix unitaire</th>
          <th style="text-align:right;padding:8px">Quantité</th>
          <th style="text-align:right;padding:8px">Montant</th>
        </tr>
        {{range .Items}}
        <tr>
          <td style="padding:8px;border-bottom:1px solid #eee">{{.Name}}</td>
          <td style="text-align:right;padding:8px;border-bottom:1px solid #eee">{{.UnitCost}}</td>
          <td style="text-align:right;padding:8px;border-bottom:1px solid #eee">{{.Quantity}}</td>
          <td style="text-align:right;padding:8px;border-bottom:1px solid #eee">{{.LineTotal}}</td>
        </tr>
        {{end}}
        <tr>
          <td colspan="3" style="text-align:right;padding:12px 8px;font-weight:bold">Total</td>
          <td style="text-align:right;padding:12px 8px;font-weight:bold">{{.Total}}</td>
        </tr>
      </table>
      <div style="margin-top:24px;padding:16px;background:#f4f4f7;border-radius:6px;font-size:13px">
        <p style="margin:0 0 4px;font-weight:bold">Coordonnées de paiement</p>
        <p style="margin:0">{{.BankName}} — {{.AccountName}}</p>
        <p style="margin:0">Compte : {{.AccountNumber}} ({{.Currency}})</p>
      </div>
    </div>
    <div style="padding:16px;text-align:center;color:#9ca3af;font-size:12px">
      Cet email a été envoyé automatiquement, merci de ne pas y répondre.
    </div>
  </div>
</body>
</html>`))

type invoiceItemView struct {
	Name      string
	UnitCost  string
	Quantity  string
	LineTotal string
}

type invoiceView struct {
	InvoiceID     string
	Title         string
	SenderName    string
	ClientName    string
	Date          string
	Items         []invoiceItemView
	Total         string
	BankName      string
	AccountName   string
	AccountNumber string
	Currency      string
}

// RenderInvoiceHTML produce el cuerpo HTML del correo. Los montos se
// entregan con exactamente 2 decimales y símbolo de moneda según el
// locale; el total es el persistido, nunca se recalcula aquí.
func RenderInvoiceHTML(in billing.InvoiceEmail, tag language.Tag) (string, error) {
	items := make([]invoiceItemView, len(in.Items))
	for i, it := range in.Items {
		items[i] = invoiceItemView{
			Name:      it.Name,
			UnitCost:  formatMoney(tag, in.Bank.Currency, it.UnitCost),
			Quantity:  it.Quantity.String(),
			LineTotal: formatMoney(tag, in.Bank.Currency, it.LineTotal),
		}
	}

	view := invoiceView{
		InvoiceID:     in.InvoiceID,
		Title:         in.Title,
		SenderName:    in.SenderName,
		ClientName:    in.ClientName,
		Date:          in.CreatedAt.Format("02/01/2006"),
		Items:         items,
		Total:         formatMoney(tag, in.Bank.Currency, in.Total),
		BankName:      in.Bank.BankName,
		AccountName:   in.Bank.AccountName,
		AccountNumber: in.Bank.AccountNumber,
		Currency:      in.Bank.Currency,
	}

	var buf strings.Builder
	if err := invoiceTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatMoney formatea un monto con el símbolo de la moneda y separadores
// del locale (ej: 1 234,50 € en fr-FR). Si la moneda no es ISO 4217
// válida, degrada a "monto CODIGO" con 2 decimales.
func formatMoney(tag language.Tag, code string, d decimal.Decimal) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return invoicing.FormatAmount(d) + " " + code
	}
	p := message.NewPrinter(tag)
	amount, _ := d.Round(2).Float64()
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}
