// Package pdf implementa la representación imprimible de una factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título factura  │  N° + Fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Email / Dirección                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | P.Unit | Importe                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                              │
//	│  FOOTER: Datos bancarios para el pago                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/tu-usuario/facturas-api/internal/application/billing"
	"github.com/tu-usuario/facturas-api/internal/domain/entity"
	"github.com/tu-usuario/facturas-api/internal/domain/invoicing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 26, Green: 26, Blue: 46}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. bank puede ser
// nil; en ese caso se omite el bloque de pago.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	client *entity.Client,
	bank *entity.BankInfo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+invoice.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	// Total
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	// Footer con datos bancarios
	if bank != nil {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(bankFooterRow(bank))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título de la factura (izq) y número + fecha (der).
func headerRow(invoice *entity.Invoice) core.Row {
	fecha := invoice.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(invoice.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("#"+invoice.ID, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente facturado.
func clientRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FACTURADO A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Dirección: %s", client.Email, client.Address),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Artículo / Servicio", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura.
func tableItemRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				invoicing.FormatAmount(it.UnitCost),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				invoicing.FormatAmount(it.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total a pagar alineado a la derecha.
func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL A PAGAR", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New(
			invoicing.FormatAmount(invoice.Total),
			props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Right: 1},
		)),
	)
}

// bankFooterRow: coordenadas de pago del emisor.
func bankFooterRow(bank *entity.BankInfo) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s — %s", bank.BankName, bank.AccountName),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(fmt.Sprintf("Cuenta: %s (%s)", bank.AccountNumber, bank.Currency),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}
