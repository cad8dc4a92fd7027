package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

const chartTopProducts = 5 // produtos no widget do dashboard

var weekdayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// ChartAggregator produz as séries de gráficos de um intervalo.
// Cada bucketização é uma redução pura e independente sobre o mesmo conjunto
// de pedidos; o top de produtos vem de uma consulta agregada própria.
// Mesma política de cache e erro do KPIAggregator.
type ChartAggregator struct {
	repo  repository.AnalyticsRepository
	cache repository.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewChartAggregator constrói o agregador. now nulo usa time.Now.
func NewChartAggregator(repo repository.AnalyticsRepository, cache repository.Cache, ttl time.Duration, now func() time.Time) *ChartAggregator {
	if now == nil {
		now = time.Now
	}
	return &ChartAggregator{repo: repo, cache: cache, ttl: ttl, now: now}
}

func chartCacheKey(establishmentID string, i Interval) string {
	return "dash:chart:" + establishmentID + ":" + i.Key()
}

// Compute devolve o conjunto de gráficos do intervalo, do cache quando válido.
func (a *ChartAggregator) Compute(ctx context.Context, establishmentID string, interval Interval) (*dto.ChartSetDTO, error) {
	key := chartCacheKey(establishmentID, interval)
	if raw, ok, err := a.cache.Get(ctx, key); err == nil && ok {
		var set dto.ChartSetDTO
		if json.Unmarshal(raw, &set) == nil {
			return &set, nil
		}
	}

	stats, err := a.repo.ListOrderStats(ctx, establishmentID, interval.Start, interval.End)
	if err != nil {
		return nil, fmt.Errorf("charts: pedidos do período: %w", err)
	}
	top, err := a.repo.GetTopProducts(ctx, establishmentID, interval.Start, interval.End, chartTopProducts)
	if err != nil {
		return nil, fmt.Errorf("charts: top produtos: %w", err)
	}

	set := &dto.ChartSetDTO{
		Period:           periodDTO(interval),
		OrdersByHour:     bucketByHour(stats),
		RevenueByWeekday: bucketRevenueByWeekday(stats),
		OrdersByStatus:   bucketByStatus(stats),
		TopProducts:      toTopProductDTOs(top),
		GeneratedAt:      a.now(),
	}

	if raw, err := json.Marshal(set); err == nil {
		_ = a.cache.Set(ctx, key, raw, a.ttl)
	}
	return set, nil
}

// Invalidate remove a entrada de cache do intervalo (refresh manual).
func (a *ChartAggregator) Invalidate(ctx context.Context, establishmentID string, interval Interval) {
	_ = a.cache.Del(ctx, chartCacheKey(establishmentID, interval))
}

// bucketByHour conta pedidos por hora do dia (24 buckets fixos).
func bucketByHour(stats []repository.OrderStat) []dto.ChartPointDTO {
	var counts [24]int64
	for _, s := range stats {
		counts[s.CreatedAt.Hour()]++
	}
	out := make([]dto.ChartPointDTO, 24)
	for h, c := range counts {
		out[h] = dto.ChartPointDTO{
			Label: fmt.Sprintf("%02dh", h),
			Value: decimal.NewFromInt(c),
		}
	}
	return out
}

// bucketRevenueByWeekday soma o faturamento (sem cancelados) por dia da semana.
func bucketRevenueByWeekday(stats []repository.OrderStat) []dto.ChartPointDTO {
	var sums [7]decimal.Decimal
	for _, s := range stats {
		if s.Status == entity.OrderStatusCancelled {
			continue
		}
		wd := int(s.CreatedAt.Weekday())
		sums[wd] = sums[wd].Add(s.Total)
	}
	out := make([]dto.ChartPointDTO, 7)
	for wd, sum := range sums {
		out[wd] = dto.ChartPointDTO{Label: weekdayLabels[wd], Value: sum.Round(2)}
	}
	return out
}

// bucketByStatus conta pedidos por status, na ordem do fluxo.
func bucketByStatus(stats []repository.OrderStat) []dto.ChartPointDTO {
	order := []string{
		entity.OrderStatusPending, entity.OrderStatusAccepted, entity.OrderStatusPreparing,
		entity.OrderStatusReady, entity.OrderStatusDelivering, entity.OrderStatusCompleted,
		entity.OrderStatusCancelled,
	}
	counts := make(map[string]int64, len(order))
	for _, s := range stats {
		counts[s.Status]++
	}
	out := make([]dto.ChartPointDTO, 0, len(order))
	for _, st := range order {
		out = append(out, dto.ChartPointDTO{Label: st, Value: decimal.NewFromInt(counts[st])})
	}
	return out
}

func toTopProductDTOs(rows []repository.TopProductRow) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			QuantitySold: r.QuantitySold,
			TotalRevenue: r.TotalRevenue.Round(2),
		})
	}
	return out
}
