package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedeja/delivery-api/internal/application/analytics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Resolução de período
//
// Todos os casos fixam o relógio em 2024-06-10T12:00:00 (uma segunda-feira)
// para que os intervalos derivados sejam verificáveis de forma determinística.
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func mustPeriod(t *testing.T, tag string) analytics.Period {
	t.Helper()
	p, err := analytics.NewPeriod(tag, time.Time{}, time.Time{})
	require.NoError(t, err)
	return p
}

func TestPeriodResolve_Hoje(t *testing.T) {
	i := mustPeriod(t, analytics.PeriodToday).Resolve(fixedNow)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), i.Start)
	assert.Equal(t, fixedNow, i.End)
}

func TestPeriodResolve_Ontem(t *testing.T) {
	i := mustPeriod(t, analytics.PeriodYesterday).Resolve(fixedNow)

	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), i.Start)
	// Fim de ontem: último instante antes da meia-noite de hoje.
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), i.End)
}

func TestPeriodResolve_Ultimos7Dias(t *testing.T) {
	i := mustPeriod(t, analytics.PeriodLast7Days).Resolve(fixedNow)

	// Sete dias corridos contando hoje: começa na meia-noite de 6 dias atrás.
	assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), i.Start)
	assert.Equal(t, fixedNow, i.End)
}

func TestPeriodResolve_EsteMes(t *testing.T) {
	i := mustPeriod(t, analytics.PeriodThisMonth).Resolve(fixedNow)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), i.Start)
	assert.Equal(t, fixedNow, i.End)
}

func TestPeriodResolve_Deterministico(t *testing.T) {
	p := mustPeriod(t, analytics.PeriodLast7Days)

	first := p.Resolve(fixedNow)
	second := p.Resolve(fixedNow)
	assert.Equal(t, first, second, "mesmo now deve produzir o mesmo intervalo")
}

func TestNewPeriod_TagDesconhecida(t *testing.T) {
	_, err := analytics.NewPeriod("last_fortnight", time.Time{}, time.Time{})
	assert.Error(t, err)
}

func TestNewPeriod_CustomInvertido(t *testing.T) {
	start := fixedNow
	end := fixedNow.AddDate(0, 0, -3)

	_, err := analytics.NewPeriod(analytics.PeriodCustom, start, end)
	assert.Error(t, err, "início posterior ao fim deve ser rejeitado")
}

func TestNewPeriod_CustomComLadoAberto(t *testing.T) {
	// Somente o fim definido: o início fica aberto (sem limite inferior).
	end := fixedNow
	p, err := analytics.NewPeriod(analytics.PeriodCustom, time.Time{}, end)
	require.NoError(t, err)

	i := p.Resolve(fixedNow)
	assert.True(t, i.Start.IsZero())
	assert.Equal(t, end, i.End)

	// Sem duração definida, não há período anterior comparável.
	assert.True(t, i.Prior().IsZero())
}

func TestNewPeriod_TagNaoCustomDescartaDatas(t *testing.T) {
	p, err := analytics.NewPeriod(analytics.PeriodToday, fixedNow.AddDate(0, 0, -5), fixedNow)
	require.NoError(t, err)

	assert.True(t, p.CustomStart.IsZero())
	assert.True(t, p.CustomEnd.IsZero())
}

func TestIntervalPrior_MesmaDuracao(t *testing.T) {
	i := analytics.Interval{
		Start: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		End:   fixedNow,
	}

	prior := i.Prior()
	require.False(t, prior.IsZero())

	// Termina imediatamente antes do início do intervalo corrente.
	assert.Equal(t, i.Start.Add(-time.Nanosecond), prior.End)
	// Mesma duração do intervalo corrente.
	assert.Equal(t, i.End.Sub(i.Start), i.Start.Sub(prior.Start))
}

func TestIntervalContains_LadosAbertos(t *testing.T) {
	open := analytics.Interval{}
	assert.True(t, open.Contains(fixedNow), "intervalo totalmente aberto contém qualquer instante")

	untilNow := analytics.Interval{End: fixedNow}
	assert.True(t, untilNow.Contains(fixedNow.AddDate(-1, 0, 0)))
	assert.False(t, untilNow.Contains(fixedNow.Add(time.Second)))
}

func TestIntervalKey_DistingueIntervalos(t *testing.T) {
	a := analytics.Interval{Start: fixedNow.AddDate(0, 0, -7), End: fixedNow}
	b := analytics.Interval{Start: fixedNow.AddDate(0, 0, -1), End: fixedNow}

	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), a.Key())
}
