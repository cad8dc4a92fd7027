package analytics_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedeja/delivery-api/internal/application/analytics"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
	"github.com/pedeja/delivery-api/internal/infrastructure/cache"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake do AnalyticsRepository
//
// Conta as chamadas para verificar a política de cache: duas computações
// dentro da validade devem resultar em uma única rodada de consultas.
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	mu    sync.Mutex
	stats map[string][]repository.OrderStat // chave: intervalo formatado
	top   []repository.TopProductRow

	statsCalls   atomic.Int64
	newCustCalls atomic.Int64
	topCalls     atomic.Int64
	newCustomers int
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{stats: make(map[string][]repository.OrderStat)}
}

func statsKey(start, end time.Time) string {
	return start.UTC().Format(time.RFC3339Nano) + "|" + end.UTC().Format(time.RFC3339Nano)
}

func (f *fakeAnalyticsRepo) put(start, end time.Time, stats []repository.OrderStat) {
	f.mu.Lock()
	f.stats[statsKey(start, end)] = stats
	f.mu.Unlock()
}

func (f *fakeAnalyticsRepo) ListOrderStats(_ context.Context, _ string, start, end time.Time) ([]repository.OrderStat, error) {
	f.statsCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats[statsKey(start, end)], nil
}

func (f *fakeAnalyticsRepo) CountNewCustomers(_ context.Context, _ string, _, _ time.Time) (int, error) {
	f.newCustCalls.Add(1)
	return f.newCustomers, nil
}

func (f *fakeAnalyticsRepo) GetTopProducts(_ context.Context, _ string, _, _ time.Time, _ int) ([]repository.TopProductRow, error) {
	f.topCalls.Add(1)
	return f.top, nil
}

func ptrTime(t time.Time) *time.Time { return &t }

func statAt(created time.Time, status string, total float64) repository.OrderStat {
	return repository.OrderStat{
		ID:        created.Format(time.RFC3339Nano),
		Status:    status,
		Total:     decimal.NewFromFloat(total),
		CreatedAt: created,
	}
}

const testEstablishment = "est-1"

// ──────────────────────────────────────────────────────────────────────────────
// Métricas do snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestKPICompute_MetricasBasicas(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	repo.newCustomers = 3

	interval := analytics.Interval{Start: fixedNow.Add(-time.Hour), End: fixedNow}
	prior := interval.Prior()

	// Período atual: dois concluídos, um cancelado e um em andamento.
	accepted := fixedNow.Add(-50 * time.Minute)
	ready := accepted.Add(20 * time.Minute)
	repo.put(interval.Start, interval.End, []repository.OrderStat{
		{ID: "a", Status: entity.OrderStatusCompleted, Total: decimal.NewFromInt(100),
			CreatedAt: fixedNow.Add(-55 * time.Minute), AcceptedAt: ptrTime(accepted), ReadyAt: ptrTime(ready)},
		{ID: "b", Status: entity.OrderStatusCompleted, Total: decimal.NewFromInt(50), CreatedAt: fixedNow.Add(-40 * time.Minute)},
		{ID: "c", Status: entity.OrderStatusCancelled, Total: decimal.NewFromInt(80), CreatedAt: fixedNow.Add(-30 * time.Minute)},
		{ID: "d", Status: entity.OrderStatusPreparing, Total: decimal.NewFromInt(30), CreatedAt: fixedNow.Add(-10 * time.Minute)},
	})
	// Período anterior: um pedido de 90.
	repo.put(prior.Start, prior.End, []repository.OrderStat{
		statAt(interval.Start.Add(-30*time.Minute), entity.OrderStatusCompleted, 90),
	})

	agg := analytics.NewKPIAggregator(repo, cache.NewMemory(), time.Minute, func() time.Time { return fixedNow })
	snap, err := agg.Compute(context.Background(), testEstablishment, interval)
	require.NoError(t, err)

	// Faturamento exclui cancelados: 100 + 50 + 30.
	assert.Equal(t, "180", snap.Revenue.Current.String())
	assert.Equal(t, "90", snap.Revenue.Previous.String())
	assert.Equal(t, "100", snap.Revenue.DeltaPct.String())

	assert.Equal(t, "4", snap.Orders.Current.String())
	// Ticket médio sobre os 3 não cancelados: 180/3.
	assert.Equal(t, "60", snap.AverageTicket.Current.String())
	assert.Equal(t, "3", snap.NewCustomers.Current.String())
	// 2 concluídos de 4; 1 cancelado de 4.
	assert.Equal(t, "50", snap.CompletionRate.Current.String())
	assert.Equal(t, "25", snap.CancellationRate.Current.String())
	// Único pedido com accepted→ready: 20 minutos.
	assert.Equal(t, "20", snap.AvgPrepMinutes.Current.String())
	assert.Equal(t, fixedNow, snap.GeneratedAt)
}

func TestKPICompute_PeriodoVazio(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	interval := analytics.Interval{Start: fixedNow.Add(-time.Hour), End: fixedNow}

	agg := analytics.NewKPIAggregator(repo, cache.NewMemory(), time.Minute, func() time.Time { return fixedNow })
	snap, err := agg.Compute(context.Background(), testEstablishment, interval)
	require.NoError(t, err)

	// Sem pedidos, tudo zera sem divisão por zero.
	assert.True(t, snap.Revenue.Current.IsZero())
	assert.True(t, snap.AverageTicket.Current.IsZero())
	assert.True(t, snap.CompletionRate.Current.IsZero())
	assert.True(t, snap.AvgPrepMinutes.Current.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de cache
// ──────────────────────────────────────────────────────────────────────────────

func TestKPICompute_CacheDentroDaValidade(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	clock := fixedNow
	mem := cache.NewMemoryWithClock(func() time.Time { return clock })

	interval := analytics.Interval{Start: fixedNow.Add(-time.Hour), End: fixedNow}
	agg := analytics.NewKPIAggregator(repo, mem, 5*time.Minute, func() time.Time { return clock })

	_, err := agg.Compute(context.Background(), testEstablishment, interval)
	require.NoError(t, err)
	first := repo.statsCalls.Load()

	// Segunda computação dois minutos depois: deve vir do cache.
	clock = clock.Add(2 * time.Minute)
	_, err = agg.Compute(context.Background(), testEstablishment, interval)
	require.NoError(t, err)
	assert.Equal(t, first, repo.statsCalls.Load(), "dentro da validade não deve reconsultar")

	// Após vencer a validade, reconsulta.
	clock = clock.Add(10 * time.Minute)
	_, err = agg.Compute(context.Background(), testEstablishment, interval)
	require.NoError(t, err)
	assert.Greater(t, repo.statsCalls.Load(), first)
}

func TestKPIInvalidate_ForcaReconsulta(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	mem := cache.NewMemory()
	interval := analytics.Interval{Start: fixedNow.Add(-time.Hour), End: fixedNow}
	agg := analytics.NewKPIAggregator(repo, mem, time.Hour, func() time.Time { return fixedNow })

	_, err := agg.Compute(context.Background(), testEstablishment, interval)
	require.NoError(t, err)
	first := repo.statsCalls.Load()

	agg.Invalidate(context.Background(), testEstablishment, interval)

	_, err = agg.Compute(context.Background(), testEstablishment, interval)
	require.NoError(t, err)
	assert.Greater(t, repo.statsCalls.Load(), first, "invalidar deve descartar a entrada")
}

func TestKPICompute_IntervaloAbertoNaoComparaAnterior(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	// Lado inferior aberto: sem duração, não há período anterior.
	interval := analytics.Interval{End: fixedNow}
	repo.put(time.Time{}, interval.End, []repository.OrderStat{
		statAt(fixedNow.Add(-time.Hour), entity.OrderStatusCompleted, 70),
	})

	agg := analytics.NewKPIAggregator(repo, cache.NewMemory(), time.Minute, func() time.Time { return fixedNow })
	snap, err := agg.Compute(context.Background(), testEstablishment, interval)
	require.NoError(t, err)

	assert.Equal(t, "70", snap.Revenue.Current.String())
	assert.True(t, snap.Revenue.Previous.IsZero())
	// Uma única consulta de stats: o período anterior não é buscado.
	assert.Equal(t, int64(1), repo.statsCalls.Load())
}
