package analytics_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedeja/delivery-api/internal/application/analytics"
	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain/repository"
	"github.com/pedeja/delivery-api/internal/infrastructure/cache"
)

// gatedAnalyticsRepo bloqueia as consultas enquanto a comporta estiver
// fechada. Permite simular uma carga lenta que termina depois de outra mais
// nova — o cenário que o token de geração do Dashboard protege.
type gatedAnalyticsRepo struct {
	fakeAnalyticsRepo
	gateOpen atomic.Bool
	release  chan struct{}
	started  chan struct{}
}

func newGatedAnalyticsRepo() *gatedAnalyticsRepo {
	r := &gatedAnalyticsRepo{release: make(chan struct{}), started: make(chan struct{}, 16)}
	r.fakeAnalyticsRepo.stats = make(map[string][]repository.OrderStat)
	return r
}

func (r *gatedAnalyticsRepo) wait() {
	if r.gateOpen.Load() {
		return
	}
	select {
	case r.started <- struct{}{}:
	default:
	}
	<-r.release
}

func (r *gatedAnalyticsRepo) ListOrderStats(ctx context.Context, est string, start, end time.Time) ([]repository.OrderStat, error) {
	r.wait()
	return r.fakeAnalyticsRepo.ListOrderStats(ctx, est, start, end)
}

func newTestDashboard(repo repository.AnalyticsRepository, orders repository.OrderRepository) *analytics.Dashboard {
	now := func() time.Time { return fixedNow }
	mem := cache.NewMemory()
	kpis := analytics.NewKPIAggregator(repo, mem, 0, now) // ttl zero: sem reuso de cache entre cargas
	charts := analytics.NewChartAggregator(repo, mem, 0, now)
	feed := analytics.NewFeed(orders, 20, 50, now)
	return analytics.NewDashboard(kpis, charts, feed, now)
}

func TestDashboardLoad_ComposicaoCompleta(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	orders := &fakeOrderRepo{}
	dash := newTestDashboard(repo, orders)

	period, err := analytics.NewPeriod(analytics.PeriodToday, time.Time{}, time.Time{})
	require.NoError(t, err)

	resp, err := dash.Load(context.Background(), testEstablishment, period)
	require.NoError(t, err)

	require.NotNil(t, resp.Kpis)
	require.NotNil(t, resp.Charts)
	assert.NotNil(t, resp.Notifications)
	assert.Equal(t, fixedNow, resp.RefreshedAt)
	assert.NotEmpty(t, resp.Period.Start)

	last, ok := dash.LastSnapshot(testEstablishment)
	require.True(t, ok)
	assert.Same(t, resp, last)
}

// Uma carga antiga que termina depois de uma mais nova não pode sobrescrever
// o último snapshot.
func TestDashboardLoad_CargaAtrasadaNaoSobrescreve(t *testing.T) {
	repo := newGatedAnalyticsRepo()
	orders := &fakeOrderRepo{}
	dash := newTestDashboard(repo, orders)

	period, err := analytics.NewPeriod(analytics.PeriodToday, time.Time{}, time.Time{})
	require.NoError(t, err)

	// Carga A: fica presa na comporta do repositório.
	var (
		wg    sync.WaitGroup
		respA *dto.DashboardResponse
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		respA, _ = dash.Load(context.Background(), testEstablishment, period)
	}()
	<-repo.started // A entrou na consulta e está bloqueada

	// Carga B: dispara depois de A e completa primeiro.
	repo.gateOpen.Store(true)
	respB, err := dash.Load(context.Background(), testEstablishment, period)
	require.NoError(t, err)

	// Libera A, que termina por último.
	close(repo.release)
	wg.Wait()
	require.NotNil(t, respA)

	// O snapshot vigente é o da geração mais nova (B), não o retardatário (A).
	last, ok := dash.LastSnapshot(testEstablishment)
	require.True(t, ok)
	assert.Same(t, respB, last)
	assert.NotSame(t, respA, last)
}

func TestDashboardRefresh_InvalidaERecarrega(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	orders := &fakeOrderRepo{}

	now := func() time.Time { return fixedNow }
	mem := cache.NewMemory()
	kpis := analytics.NewKPIAggregator(repo, mem, time.Hour, now)
	charts := analytics.NewChartAggregator(repo, mem, time.Hour, now)
	feed := analytics.NewFeed(orders, 20, 50, now)
	dash := analytics.NewDashboard(kpis, charts, feed, now)

	period, err := analytics.NewPeriod(analytics.PeriodToday, time.Time{}, time.Time{})
	require.NoError(t, err)

	_, err = dash.Load(context.Background(), testEstablishment, period)
	require.NoError(t, err)
	afterLoad := repo.topCalls.Load()

	// Load de novo: cache quente, nada de consultas extras de gráfico.
	_, err = dash.Load(context.Background(), testEstablishment, period)
	require.NoError(t, err)
	assert.Equal(t, afterLoad, repo.topCalls.Load())

	// Refresh: invalida e reconsulta.
	_, err = dash.Refresh(context.Background(), testEstablishment, period)
	require.NoError(t, err)
	assert.Greater(t, repo.topCalls.Load(), afterLoad)
}
