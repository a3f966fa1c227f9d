// Package pdf genera el comprobante de venta (no fiscal) con Maroto v2.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────┐
//	│  Nombre de la tienda / Sistema de Gestão │
//	│  COMPROVANTE DE VENDA: venta, fecha, pago│
//	│  ITENS: nombre + subtotal                │
//	│         precio x cant + categoría        │
//	│  TOTAL                                   │
//	│  Pie: agradecimiento + leyenda           │
//	└──────────────────────────────────────────┘
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

	"github.com/jhoicas/pdv-api/internal/application/receipt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 229, Green: 62, Blue: 62}
	colorGray    = &props.Color{Red: 102, Green: 102, Blue: 102}
	colorLine    = &props.Color{Red: 204, Green: 204, Blue: 204}
)

var _ receipt.PDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa receipt.PDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(ctx context.Context, r receipt.Receipt) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(40).WithRightMargin(40).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Comprovante de venda "+r.SaleID, true).
		WithAuthor(r.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r.StoreName))
	m.AddRows(line.NewRow(2, props.Line{Color: colorLine, Thickness: 0.6}))
	m.AddRows(saleInfoRows(r)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorLine, Thickness: 0.3}))
	m.AddRows(itemRows(r.Lines)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorLine, Thickness: 0.3}))
	m.AddRows(totalRow(r.Total))
	m.AddRows(line.NewRow(2, props.Line{Color: colorLine, Thickness: 0.3}))
	m.AddRows(footerRows(r)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(storeName string) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Color: colorPrimary, Top: 1,
			}),
			text.New("Sistema de Gestão", props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 11,
			}),
		),
	)
}

func saleInfoRows(r receipt.Receipt) []core.Row {
	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New("COMPROVANTE DE VENDA", props.Text{Style: fontstyle.Bold, Size: 13, Top: 2}),
		)),
	}
	for _, kv := range [][2]string{
		{"Venda:", "#" + r.SaleID},
		{"Data/Hora:", r.DateTime},
		{"Pagamento:", r.PaymentLabel},
	} {
		rows = append(rows, labelValueRow(kv[0], kv[1], 6, 10, false))
	}
	return rows
}

func itemRows(lines []receipt.Line) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("ITENS", props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
		)),
	}
	for _, l := range lines {
		rows = append(rows,
			labelValueRow(l.Name, l.Subtotal, 6, 10, true),
			row.New(6).Add(
				col.New(8).Add(text.New(l.Detail, props.Text{Size: 8, Color: colorGray})),
				col.New(4).Add(text.New(l.Category, props.Text{Size: 8, Color: colorGray, Align: align.Right})),
			),
		)
	}
	return rows
}

func totalRow(total string) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 14, Top: 2})),
		col.New(6).Add(text.New(total, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

func footerRows(r receipt.Receipt) []core.Row {
	center := func(s string, size float64, style fontstyle.Type) core.Row {
		return row.New(size/2+2).Add(col.New(12).Add(text.New(s, props.Text{
			Size: size, Style: style, Align: align.Center, Color: colorGray,
		})))
	}
	return []core.Row{
		row.New(3),
		center("Obrigado pela preferência!", 10, fontstyle.Normal),
		center(r.StoreName, 10, fontstyle.Bold),
		center("Sua loja de suplementos", 10, fontstyle.Normal),
		row.New(3),
		center("Este documento não possui valor fiscal", 8, fontstyle.Normal),
		center("Gerado em "+r.GeneratedAt, 8, fontstyle.Normal),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func labelValueRow(label, value string, height float64, size float64, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(height).Add(
		col.New(6).Add(text.New(label, props.Text{Size: size, Style: style})),
		col.New(6).Add(text.New(value, props.Text{Size: size, Style: style, Align: align.Right})),
	)
}
