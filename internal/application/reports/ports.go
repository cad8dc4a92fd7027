package reports

import (
	"context"

	"github.com/pedeja/delivery-api/internal/application/dto"
)

// OrdersExporter porto do gerador de planilha de pedidos (XLSX).
type OrdersExporter interface {
	ExportOrders(ctx context.Context, establishmentName string, orders []dto.OrderResponse) ([]byte, error)
}

// DashboardPDFGenerator porto do gerador do resumo de KPIs em PDF.
type DashboardPDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, establishmentName string, kpis *dto.KpiSnapshotDTO, charts *dto.ChartSetDTO) ([]byte, error)
}
