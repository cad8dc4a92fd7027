package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodDTO intervalo resolvido do filtro de período.
// Lados vazios indicam consulta sem limite naquele lado (período custom parcial).
type PeriodDTO struct {
	Start string `json:"start,omitempty"` // RFC3339
	End   string `json:"end,omitempty"`
}

// KpiValueDTO valor de um KPI com comparação contra o período anterior.
// DeltaPct segue a regra: 0 se ambos zero; 100 se anterior zero e atual > 0;
// (atual-anterior)/anterior*100 nos demais casos.
type KpiValueDTO struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	DeltaPct decimal.Decimal `json:"delta_pct"`
}

// KpiSnapshotDTO resposta de GET /api/dashboard/kpis.
// Substituído por inteiro a cada recomputação; nunca mutado em parte.
type KpiSnapshotDTO struct {
	Period             PeriodDTO   `json:"period"`
	Revenue            KpiValueDTO `json:"revenue"`             // faturamento (pedidos não cancelados)
	Orders             KpiValueDTO `json:"orders"`              // volume de pedidos
	AverageTicket      KpiValueDTO `json:"average_ticket"`      // faturamento / pedidos não cancelados
	NewCustomers       KpiValueDTO `json:"new_customers"`       // telefones com primeiro pedido no período
	CompletionRate     KpiValueDTO `json:"completion_rate"`     // % completed sobre o total
	CancellationRate   KpiValueDTO `json:"cancellation_rate"`   // % cancelled sobre o total
	AvgPrepMinutes     KpiValueDTO `json:"avg_prep_minutes"`    // média ready_at - accepted_at
	AvgDeliveryMinutes KpiValueDTO `json:"avg_delivery_minutes"` // média completed_at - delivering_at
	GeneratedAt        time.Time   `json:"generated_at"`
}

// ChartPointDTO par rótulo/valor pronto para renderização.
type ChartPointDTO struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// TopProductDTO linha do widget de produtos mais vendidos.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int64           `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ChartSetDTO resposta de GET /api/dashboard/charts.
type ChartSetDTO struct {
	Period           PeriodDTO       `json:"period"`
	OrdersByHour     []ChartPointDTO `json:"orders_by_hour"`     // 24 buckets, 00-23
	RevenueByWeekday []ChartPointDTO `json:"revenue_by_weekday"` // 7 buckets, domingo primeiro
	OrdersByStatus   []ChartPointDTO `json:"orders_by_status"`
	TopProducts      []TopProductDTO `json:"top_products"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// OrderNotificationDTO item do feed de pedidos novos.
type OrderNotificationDTO struct {
	OrderID      string          `json:"order_id"`
	Number       int64           `json:"number"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	ReceivedAt   time.Time       `json:"received_at"`
}

// DashboardResponse resposta combinada de GET /api/dashboard.
type DashboardResponse struct {
	Period        PeriodDTO              `json:"period"`
	Kpis          *KpiSnapshotDTO        `json:"kpis"`
	Charts        *ChartSetDTO           `json:"charts"`
	Notifications []OrderNotificationDTO `json:"notifications"`
	RefreshedAt   time.Time              `json:"refreshed_at"`
}
