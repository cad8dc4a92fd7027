package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pedeja/delivery-api/internal/application/dto"
)

// Dashboard compõe os três agregadores atrás de uma única fachada.
// As três buscas correm em paralelo; o primeiro erro aborta a resposta.
//
// Cada carga recebe um token de geração por estabelecimento: uma carga que
// termina depois de outra mais nova ser disparada é descartada ao gravar o
// último snapshot, em vez de sobrescrevê-lo (evita o bug de last-write-wins
// entre buscas sobrepostas).
type Dashboard struct {
	kpis   *KPIAggregator
	charts *ChartAggregator
	feed   *Feed
	now    func() time.Time

	mu   sync.Mutex
	gen  map[string]uint64
	last map[string]*dto.DashboardResponse
}

// NewDashboard constrói o orquestrador, uma única vez no bootstrap da
// aplicação. now nulo usa time.Now.
func NewDashboard(kpis *KPIAggregator, charts *ChartAggregator, feed *Feed, now func() time.Time) *Dashboard {
	if now == nil {
		now = time.Now
	}
	return &Dashboard{
		kpis:   kpis,
		charts: charts,
		feed:   feed,
		now:    now,
		gen:    make(map[string]uint64),
		last:   make(map[string]*dto.DashboardResponse),
	}
}

// Load resolve o intervalo do período e monta a resposta combinada.
func (d *Dashboard) Load(ctx context.Context, establishmentID string, period Period) (*dto.DashboardResponse, error) {
	interval := period.Resolve(d.now())

	d.mu.Lock()
	d.gen[establishmentID]++
	myGen := d.gen[establishmentID]
	d.mu.Unlock()

	type kpiResult struct {
		snap *dto.KpiSnapshotDTO
		err  error
	}
	type chartResult struct {
		set *dto.ChartSetDTO
		err error
	}
	type feedResult struct {
		items []dto.OrderNotificationDTO
		err   error
	}

	kpiCh := make(chan kpiResult, 1)
	chartCh := make(chan chartResult, 1)
	feedCh := make(chan feedResult, 1)

	go func() {
		snap, err := d.kpis.Compute(ctx, establishmentID, interval)
		kpiCh <- kpiResult{snap, err}
	}()
	go func() {
		set, err := d.charts.Compute(ctx, establishmentID, interval)
		chartCh <- chartResult{set, err}
	}()
	go func() {
		items, err := d.feed.Poll(ctx, establishmentID)
		feedCh <- feedResult{items, err}
	}()

	kpi := <-kpiCh
	chart := <-chartCh
	fd := <-feedCh

	if kpi.err != nil {
		return nil, fmt.Errorf("dashboard: kpis: %w", kpi.err)
	}
	if chart.err != nil {
		return nil, fmt.Errorf("dashboard: gráficos: %w", chart.err)
	}
	if fd.err != nil {
		return nil, fmt.Errorf("dashboard: feed: %w", fd.err)
	}

	resp := &dto.DashboardResponse{
		Period:        periodDTO(interval),
		Kpis:          kpi.snap,
		Charts:        chart.set,
		Notifications: fd.items,
		RefreshedAt:   d.now(),
	}

	// Grava o snapshot só se esta ainda é a geração corrente.
	d.mu.Lock()
	if d.gen[establishmentID] == myGen {
		d.last[establishmentID] = resp
	}
	d.mu.Unlock()

	return resp, nil
}

// Refresh invalida os caches do intervalo e recarrega tudo.
func (d *Dashboard) Refresh(ctx context.Context, establishmentID string, period Period) (*dto.DashboardResponse, error) {
	interval := period.Resolve(d.now())
	d.kpis.Invalidate(ctx, establishmentID, interval)
	d.charts.Invalidate(ctx, establishmentID, interval)
	return d.Load(ctx, establishmentID, period)
}

// LastSnapshot devolve o último snapshot gravado do estabelecimento, se houver.
func (d *Dashboard) LastSnapshot(establishmentID string) (*dto.DashboardResponse, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	resp, ok := d.last[establishmentID]
	return resp, ok
}
