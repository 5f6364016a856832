// Package pdf implementa a geração do comprovante de venda em PDF.
//
// Layout da página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Banca + N° Venda + Data          │
//	│  ───────────────────────────────────────  │
//	│  CLIENTE (quando identificado)            │
//	│  ───────────────────────────────────────  │
//	│  TABELA: Qtd | Produto | P.Unit | Subtot  │
//	│  ───────────────────────────────────────  │
//	│  TOTAL + forma de pagamento               │
//	│  ───────────────────────────────────────  │
//	│  RODAPÉ: legenda                          │
//	└───────────────────────────────────────────┘
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

	"github.com/barcaexpert/pdv-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa sales.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

// NewMarotoReceiptGenerator constrói o gerador com o nome da banca.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	if storeName == "" {
		storeName = "Banca de Jornal"
	}
	return &MarotoReceiptGenerator{storeName: storeName}
}

// GenerateReceiptPDF gera o comprovante e devolve seus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	sale *entity.Sale,
	items []*entity.SaleItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Venda", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if sale.CustomerName != "" {
		m.AddRows(customerRow(sale))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da banca (esq) e N° da venda + data (dir).
func (g *MarotoReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	data := sale.SoldAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Operador: "+nonEmpty(sale.OperatorName, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROVANTE DE VENDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Venda N° %d", sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New(data, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente identificado na venda.
func customerRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 6,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Produto", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: uma linha por item da venda.
func tableItemRows(items []*entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+it.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: total e forma de pagamento alinhados à direita.
func totalsRow(sale *entity.Sale) core.Row {
	return row.New(16).Add(
		col.New(5),
		col.New(4).Add(
			text.New("Pagamento:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 7, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(paymentLabel(sale.PaymentMethod), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New("R$ "+sale.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 7, Right: 1,
			}),
		),
	)
}

// footerRow: leyenda de rodapé.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento sem valor fiscal. Obrigado pela preferência!",
			props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// paymentLabel traduz o código da forma de pagamento para exibição.
func paymentLabel(m entity.PaymentMethod) string {
	switch m {
	case entity.PaymentCash:
		return "Dinheiro"
	case entity.PaymentCredit:
		return "Cartão de crédito"
	case entity.PaymentDebit:
		return "Cartão de débito"
	case entity.PaymentPix:
		return "PIX"
	case entity.PaymentOnAccount:
		return "Fiado"
	}
	return string(m)
}
