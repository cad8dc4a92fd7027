// Package pdf implementa o resumo do dashboard em PDF com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do estabelecimento  │  Período + geração      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA KPIs: Indicador | Atual | Anterior | Variação %     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produtos mais vendidos                             │
//	│  TABELA: Pedidos por status                                 │
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
	"github.com/shopspring/decimal"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/reports"
)

var _ reports.DashboardPDFGenerator = (*MarotoDashboardGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 214, Green: 69, Blue: 24}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoDashboardGenerator implementa reports.DashboardPDFGenerator usando Maroto v2.
type MarotoDashboardGenerator struct{}

// NewMarotoDashboardGenerator constrói o gerador.
func NewMarotoDashboardGenerator() *MarotoDashboardGenerator { return &MarotoDashboardGenerator{} }

// GenerateDashboardPDF gera o PDF e devolve os bytes.
func (g *MarotoDashboardGenerator) GenerateDashboardPDF(
	_ context.Context,
	establishmentName string,
	kpis *dto.KpiSnapshotDTO,
	charts *dto.ChartSetDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumo do Dashboard", true).
		WithAuthor(establishmentName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(establishmentName, kpis))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("INDICADORES DO PERÍODO"))
	m.AddRows(kpiHeaderRow())
	for _, r := range kpiRows(kpis) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("PRODUTOS MAIS VENDIDOS"))
	for _, r := range topProductRows(charts.TopProducts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("PEDIDOS POR STATUS"))
	for _, r := range statusRows(charts.OrdersByStatus) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome do estabelecimento (esq) e período + geração (dir).
func headerRow(establishmentName string, kpis *dto.KpiSnapshotDTO) core.Row {
	period := periodLabel(kpis.Period)
	generated := kpis.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(establishmentName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumo do dashboard", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Gerado em: "+generated, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// kpiHeaderRow: cabeçalho da tabela de indicadores.
func kpiHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Indicador", 5, align.Left),
		h("Atual", 3, align.Right),
		h("Anterior", 2, align.Right),
		h("Variação", 2, align.Right),
	)
}

// kpiRows: uma linha por KPI, com a variação percentual contra o período anterior.
func kpiRows(kpis *dto.KpiSnapshotDTO) []core.Row {
	entries := []struct {
		label string
		v     dto.KpiValueDTO
		money bool
	}{
		{"Faturamento", kpis.Revenue, true},
		{"Pedidos", kpis.Orders, false},
		{"Ticket médio", kpis.AverageTicket, true},
		{"Novos clientes", kpis.NewCustomers, false},
		{"Taxa de conclusão (%)", kpis.CompletionRate, false},
		{"Taxa de cancelamento (%)", kpis.CancellationRate, false},
		{"Preparo médio (min)", kpis.AvgPrepMinutes, false},
		{"Entrega média (min)", kpis.AvgDeliveryMinutes, false},
	}
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(e.label, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(formatValue(e.v.Current, e.money), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(2).Add(text.New(formatValue(e.v.Previous, e.money), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			})),
			col.New(2).Add(text.New(e.v.DeltaPct.StringFixed(1)+"%", props.Text{
				Size: 8, Align: align.Right, Top: 1, Style: fontstyle.Bold,
			})),
		))
	}
	return result
}

// topProductRows: ranking de produtos por receita.
func topProductRows(products []dto.TopProductDTO) []core.Row {
	if len(products) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sem vendas no período.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	result := make([]core.Row, 0, len(products))
	for i, p := range products {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%dº", i+1), props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(p.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d un.", p.QuantitySold), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(3).Add(text.New("R$ "+p.TotalRevenue.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return result
}

// statusRows: contagem de pedidos por status na ordem do fluxo.
func statusRows(points []dto.ChartPointDTO) []core.Row {
	result := make([]core.Row, 0, len(points))
	for _, p := range points {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(p.Label, props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(p.Value.StringFixed(0), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func formatValue(v decimal.Decimal, money bool) string {
	if money {
		return "R$ " + v.StringFixed(2)
	}
	return v.StringFixed(0)
}

// periodLabel formata o intervalo resolvido para exibição.
func periodLabel(p dto.PeriodDTO) string {
	if p.Start == "" && p.End == "" {
		return "todo o histórico"
	}
	if p.Start == "" {
		return "até " + p.End
	}
	if p.End == "" {
		return "desde " + p.Start
	}
	return p.Start + " a " + p.End
}
