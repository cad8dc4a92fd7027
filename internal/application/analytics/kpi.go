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

// KPIAggregator computa o snapshot de KPIs de um intervalo comparado ao
// intervalo anterior de mesma duração. Resultados ficam no cache injetado
// pela validade configurada; qualquer erro de busca aborta o snapshot inteiro
// (nunca devolve KPIs parciais).
type KPIAggregator struct {
	repo  repository.AnalyticsRepository
	cache repository.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewKPIAggregator constrói o agregador. now nulo usa time.Now.
func NewKPIAggregator(repo repository.AnalyticsRepository, cache repository.Cache, ttl time.Duration, now func() time.Time) *KPIAggregator {
	if now == nil {
		now = time.Now
	}
	return &KPIAggregator{repo: repo, cache: cache, ttl: ttl, now: now}
}

func kpiCacheKey(establishmentID string, i Interval) string {
	return "dash:kpi:" + establishmentID + ":" + i.Key()
}

// Compute devolve o snapshot do intervalo, do cache quando válido.
func (a *KPIAggregator) Compute(ctx context.Context, establishmentID string, interval Interval) (*dto.KpiSnapshotDTO, error) {
	key := kpiCacheKey(establishmentID, interval)
	if raw, ok, err := a.cache.Get(ctx, key); err == nil && ok {
		var snap dto.KpiSnapshotDTO
		if json.Unmarshal(raw, &snap) == nil {
			return &snap, nil
		}
	}

	prior := interval.Prior()

	cur, err := a.repo.ListOrderStats(ctx, establishmentID, interval.Start, interval.End)
	if err != nil {
		return nil, fmt.Errorf("kpi: pedidos do período: %w", err)
	}
	var prev []repository.OrderStat
	if !prior.IsZero() {
		prev, err = a.repo.ListOrderStats(ctx, establishmentID, prior.Start, prior.End)
		if err != nil {
			return nil, fmt.Errorf("kpi: pedidos do período anterior: %w", err)
		}
	}

	newCur, err := a.repo.CountNewCustomers(ctx, establishmentID, interval.Start, interval.End)
	if err != nil {
		return nil, fmt.Errorf("kpi: novos clientes: %w", err)
	}
	newPrev := 0
	if !prior.IsZero() {
		newPrev, err = a.repo.CountNewCustomers(ctx, establishmentID, prior.Start, prior.End)
		if err != nil {
			return nil, fmt.Errorf("kpi: novos clientes do período anterior: %w", err)
		}
	}

	snap := buildKpiSnapshot(interval, cur, prev, newCur, newPrev, a.now())

	if raw, err := json.Marshal(snap); err == nil {
		_ = a.cache.Set(ctx, key, raw, a.ttl) // falha de cache não invalida o snapshot
	}
	return snap, nil
}

// Invalidate remove a entrada de cache do intervalo (refresh manual).
func (a *KPIAggregator) Invalidate(ctx context.Context, establishmentID string, interval Interval) {
	_ = a.cache.Del(ctx, kpiCacheKey(establishmentID, interval))
}

// kpiTotals acumuladores de uma única passada sobre os pedidos.
type kpiTotals struct {
	orders       int
	nonCancelled int
	completed    int
	cancelled    int
	revenue      decimal.Decimal

	prepSum   decimal.Decimal // minutos
	prepN     int
	deliverSum decimal.Decimal
	deliverN   int
}

func reduceStats(stats []repository.OrderStat) kpiTotals {
	var t kpiTotals
	for _, s := range stats {
		t.orders++
		switch s.Status {
		case entity.OrderStatusCancelled:
			t.cancelled++
		case entity.OrderStatusCompleted:
			t.completed++
			t.nonCancelled++
			t.revenue = t.revenue.Add(s.Total)
		default:
			t.nonCancelled++
			t.revenue = t.revenue.Add(s.Total)
		}
		if s.AcceptedAt != nil && s.ReadyAt != nil {
			mins := decimal.NewFromFloat(s.ReadyAt.Sub(*s.AcceptedAt).Minutes())
			t.prepSum = t.prepSum.Add(mins)
			t.prepN++
		}
		if s.DeliveringAt != nil && s.CompletedAt != nil {
			mins := decimal.NewFromFloat(s.CompletedAt.Sub(*s.DeliveringAt).Minutes())
			t.deliverSum = t.deliverSum.Add(mins)
			t.deliverN++
		}
	}
	return t
}

func (t kpiTotals) avgTicket() decimal.Decimal {
	if t.nonCancelled == 0 {
		return decimal.Zero
	}
	return t.revenue.Div(decimal.NewFromInt(int64(t.nonCancelled))).Round(2)
}

func (t kpiTotals) completionRate() decimal.Decimal {
	if t.orders == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(t.completed)).Div(decimal.NewFromInt(int64(t.orders))).Mul(hundred).Round(2)
}

func (t kpiTotals) cancellationRate() decimal.Decimal {
	if t.orders == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(t.cancelled)).Div(decimal.NewFromInt(int64(t.orders))).Mul(hundred).Round(2)
}

func (t kpiTotals) avgPrep() decimal.Decimal {
	if t.prepN == 0 {
		return decimal.Zero
	}
	return t.prepSum.Div(decimal.NewFromInt(int64(t.prepN))).Round(1)
}

func (t kpiTotals) avgDelivery() decimal.Decimal {
	if t.deliverN == 0 {
		return decimal.Zero
	}
	return t.deliverSum.Div(decimal.NewFromInt(int64(t.deliverN))).Round(1)
}

func kpiValue(current, previous decimal.Decimal) dto.KpiValueDTO {
	return dto.KpiValueDTO{Current: current, Previous: previous, DeltaPct: Delta(current, previous)}
}

func buildKpiSnapshot(interval Interval, cur, prev []repository.OrderStat, newCur, newPrev int, generatedAt time.Time) *dto.KpiSnapshotDTO {
	c := reduceStats(cur)
	p := reduceStats(prev)

	return &dto.KpiSnapshotDTO{
		Period:             periodDTO(interval),
		Revenue:            kpiValue(c.revenue.Round(2), p.revenue.Round(2)),
		Orders:             kpiValue(decimal.NewFromInt(int64(c.orders)), decimal.NewFromInt(int64(p.orders))),
		AverageTicket:      kpiValue(c.avgTicket(), p.avgTicket()),
		NewCustomers:       kpiValue(decimal.NewFromInt(int64(newCur)), decimal.NewFromInt(int64(newPrev))),
		CompletionRate:     kpiValue(c.completionRate(), p.completionRate()),
		CancellationRate:   kpiValue(c.cancellationRate(), p.cancellationRate()),
		AvgPrepMinutes:     kpiValue(c.avgPrep(), p.avgPrep()),
		AvgDeliveryMinutes: kpiValue(c.avgDelivery(), p.avgDelivery()),
		GeneratedAt:        generatedAt,
	}
}

func periodDTO(i Interval) dto.PeriodDTO {
	var p dto.PeriodDTO
	if !i.Start.IsZero() {
		p.Start = i.Start.Format(time.RFC3339)
	}
	if !i.End.IsZero() {
		p.End = i.End.Format(time.RFC3339)
	}
	return p
}
