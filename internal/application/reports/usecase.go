package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/pedeja/delivery-api/internal/application/analytics"
	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/usecase"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// exportLimit teto de linhas de uma exportação de pedidos.
const exportLimit = 5000

// ReportUseCase exportações do painel: planilha de pedidos e resumo de KPIs.
type ReportUseCase struct {
	estRepo   repository.EstablishmentRepository
	orderRepo repository.OrderRepository
	kpis      *analytics.KPIAggregator
	charts    *analytics.ChartAggregator
	exporter  OrdersExporter
	pdf       DashboardPDFGenerator
	now       func() time.Time
}

// NewReportUseCase constrói o caso de uso. now nil usa time.Now.
func NewReportUseCase(
	estRepo repository.EstablishmentRepository,
	orderRepo repository.OrderRepository,
	kpis *analytics.KPIAggregator,
	charts *analytics.ChartAggregator,
	exporter OrdersExporter,
	pdf DashboardPDFGenerator,
	now func() time.Time,
) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{
		estRepo:   estRepo,
		orderRepo: orderRepo,
		kpis:      kpis,
		charts:    charts,
		exporter:  exporter,
		pdf:       pdf,
		now:       now,
	}
}

// ExportOrders gera a planilha XLSX dos pedidos filtrados.
// Devolve (bytes, nome do arquivo, erro).
func (uc *ReportUseCase) ExportOrders(ctx context.Context, establishmentID string, f repository.OrderFilter) ([]byte, string, error) {
	est, err := uc.estRepo.GetByID(establishmentID)
	if err != nil {
		return nil, "", fmt.Errorf("reports.ExportOrders: %w", err)
	}
	if est == nil {
		return nil, "", domain.ErrNotFound
	}
	f.Limit = exportLimit
	f.Offset = 0
	orders, _, err := uc.orderRepo.List(ctx, establishmentID, f)
	if err != nil {
		return nil, "", fmt.Errorf("reports.ExportOrders: %w", err)
	}
	rows := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, *usecase.ToOrderResponse(o))
	}
	data, err := uc.exporter.ExportOrders(ctx, est.Name, rows)
	if err != nil {
		return nil, "", fmt.Errorf("reports.ExportOrders: %w", err)
	}
	filename := fmt.Sprintf("pedidos_%s_%s.xlsx", est.Slug, uc.now().Format("2006-01-02"))
	return data, filename, nil
}

// DashboardPDF gera o resumo de KPIs e gráficos do período em PDF.
func (uc *ReportUseCase) DashboardPDF(ctx context.Context, establishmentID string, period analytics.Period) ([]byte, string, error) {
	est, err := uc.estRepo.GetByID(establishmentID)
	if err != nil {
		return nil, "", fmt.Errorf("reports.DashboardPDF: %w", err)
	}
	if est == nil {
		return nil, "", domain.ErrNotFound
	}
	interval := period.Resolve(uc.now())
	kpis, err := uc.kpis.Compute(ctx, establishmentID, interval)
	if err != nil {
		return nil, "", fmt.Errorf("reports.DashboardPDF: kpis: %w", err)
	}
	charts, err := uc.charts.Compute(ctx, establishmentID, interval)
	if err != nil {
		return nil, "", fmt.Errorf("reports.DashboardPDF: gráficos: %w", err)
	}
	data, err := uc.pdf.GenerateDashboardPDF(ctx, est.Name, kpis, charts)
	if err != nil {
		return nil, "", fmt.Errorf("reports.DashboardPDF: %w", err)
	}
	filename := fmt.Sprintf("dashboard_%s_%s.pdf", est.Slug, uc.now().Format("2006-01-02"))
	return data, filename, nil
}
