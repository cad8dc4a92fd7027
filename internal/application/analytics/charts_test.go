package analytics_test

import (
	"context"
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

func TestChartCompute_Buckets(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	interval := analytics.Interval{Start: fixedNow.AddDate(0, 0, -6), End: fixedNow}

	// fixedNow é uma segunda-feira (2024-06-10). Três pedidos:
	//  - dois na segunda às 12h (um deles cancelado);
	//  - um no domingo às 20h.
	monNoon := fixedNow
	sunNight := time.Date(2024, 6, 9, 20, 0, 0, 0, time.UTC)
	repo.put(interval.Start, interval.End, []repository.OrderStat{
		statAt(monNoon, entity.OrderStatusCompleted, 100),
		statAt(monNoon.Add(time.Minute), entity.OrderStatusCancelled, 40),
		statAt(sunNight, entity.OrderStatusCompleted, 60),
	})
	repo.top = []repository.TopProductRow{
		{ProductID: "p1", ProductName: "Pizza Margherita", QuantitySold: 12, TotalRevenue: decimal.NewFromInt(480)},
	}

	agg := analytics.NewChartAggregator(repo, cache.NewMemory(), time.Minute, func() time.Time { return fixedNow })
	set, err := agg.Compute(context.Background(), testEstablishment, interval)
	require.NoError(t, err)

	// Pedidos por hora: 24 buckets fixos, mesmo vazios.
	require.Len(t, set.OrdersByHour, 24)
	assert.Equal(t, "12h", set.OrdersByHour[12].Label)
	assert.Equal(t, "2", set.OrdersByHour[12].Value.String())
	assert.Equal(t, "1", set.OrdersByHour[20].Value.String())
	assert.Equal(t, "0", set.OrdersByHour[3].Value.String())

	// Faturamento por dia da semana ignora cancelados.
	require.Len(t, set.RevenueByWeekday, 7)
	assert.Equal(t, "Seg", set.RevenueByWeekday[1].Label)
	assert.Equal(t, "100", set.RevenueByWeekday[1].Value.String())
	assert.Equal(t, "Dom", set.RevenueByWeekday[0].Label)
	assert.Equal(t, "60", set.RevenueByWeekday[0].Value.String())

	// Distribuição por status na ordem do fluxo.
	require.Len(t, set.OrdersByStatus, 7)
	assert.Equal(t, entity.OrderStatusPending, set.OrdersByStatus[0].Label)
	assert.Equal(t, entity.OrderStatusCompleted, set.OrdersByStatus[5].Label)
	assert.Equal(t, "2", set.OrdersByStatus[5].Value.String())
	assert.Equal(t, "1", set.OrdersByStatus[6].Value.String()) // cancelled

	require.Len(t, set.TopProducts, 1)
	assert.Equal(t, "Pizza Margherita", set.TopProducts[0].ProductName)
	assert.Equal(t, int64(12), set.TopProducts[0].QuantitySold)
}

func TestChartCompute_CacheCompartilhaChavePorIntervalo(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	mem := cache.NewMemory()
	agg := analytics.NewChartAggregator(repo, mem, time.Hour, func() time.Time { return fixedNow })

	a := analytics.Interval{Start: fixedNow.Add(-time.Hour), End: fixedNow}
	b := analytics.Interval{Start: fixedNow.Add(-2 * time.Hour), End: fixedNow}

	_, err := agg.Compute(context.Background(), testEstablishment, a)
	require.NoError(t, err)
	_, err = agg.Compute(context.Background(), testEstablishment, a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.topCalls.Load(), "mesmo intervalo deve reusar o cache")

	// Intervalo diferente tem chave própria.
	_, err = agg.Compute(context.Background(), testEstablishment, b)
	require.NoError(t, err)
	assert.Equal(t, int64(2), repo.topCalls.Load())
}
