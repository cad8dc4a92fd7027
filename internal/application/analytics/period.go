// Package analytics contém os agregadores do dashboard: filtro de período,
// KPIs com comparação período-a-período, séries de gráficos e o feed de
// pedidos recentes, compostos pelo orquestrador Dashboard.
package analytics

import (
	"fmt"
	"time"
)

// Tags de período suportadas pelo filtro do dashboard.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodLast7Days = "last_7_days"
	PeriodThisMonth = "this_month"
	PeriodCustom    = "custom"
)

// Period seletor etiquetado de período de relatório.
// CustomStart/CustomEnd só valem quando Tag é custom; qualquer lado zero
// propaga como "sem filtro" naquele lado.
type Period struct {
	Tag         string
	CustomStart time.Time
	CustomEnd   time.Time
}

// NewPeriod constrói o período a partir da tag. Tags não-custom descartam
// datas custom escolhidas anteriormente.
func NewPeriod(tag string, customStart, customEnd time.Time) (Period, error) {
	switch tag {
	case PeriodToday, PeriodYesterday, PeriodLast7Days, PeriodThisMonth:
		return Period{Tag: tag}, nil
	case PeriodCustom:
		if !customStart.IsZero() && !customEnd.IsZero() && customStart.After(customEnd) {
			return Period{}, fmt.Errorf("período custom: início posterior ao fim")
		}
		return Period{Tag: PeriodCustom, CustomStart: customStart, CustomEnd: customEnd}, nil
	default:
		return Period{}, fmt.Errorf("período desconhecido: %q", tag)
	}
}

// Interval intervalo concreto de datas. Lados zero significam sem limite.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Resolve deriva o intervalo concreto do período para o instante now.
// Determinístico dado um now fixo; Start <= End para toda tag não-custom.
func (p Period) Resolve(now time.Time) Interval {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p.Tag {
	case PeriodToday:
		return Interval{Start: startOfDay, End: now}
	case PeriodYesterday:
		yStart := startOfDay.AddDate(0, 0, -1)
		return Interval{Start: yStart, End: startOfDay.Add(-time.Nanosecond)}
	case PeriodLast7Days:
		return Interval{Start: startOfDay.AddDate(0, 0, -6), End: now}
	case PeriodThisMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Interval{Start: monthStart, End: now}
	case PeriodCustom:
		return Interval{Start: p.CustomStart, End: p.CustomEnd}
	default:
		return Interval{Start: startOfDay, End: now}
	}
}

// Prior devolve o intervalo de mesma duração imediatamente anterior.
// Intervalos com lado aberto não têm duração definida; devolve zero e o
// agregador compara contra um período vazio.
func (i Interval) Prior() Interval {
	if i.Start.IsZero() || i.End.IsZero() {
		return Interval{}
	}
	d := i.End.Sub(i.Start)
	return Interval{Start: i.Start.Add(-d), End: i.Start.Add(-time.Nanosecond)}
}

// IsZero informa se ambos os lados estão abertos.
func (i Interval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}

// Contains verifica pertencimento respeitando lados abertos.
func (i Interval) Contains(t time.Time) bool {
	if !i.Start.IsZero() && t.Before(i.Start) {
		return false
	}
	if !i.End.IsZero() && t.After(i.End) {
		return false
	}
	return true
}

// Key identifica o intervalo para chaves de cache (ISO dos dois lados).
func (i Interval) Key() string {
	const layout = time.RFC3339Nano
	var s, e string
	if !i.Start.IsZero() {
		s = i.Start.UTC().Format(layout)
	}
	if !i.End.IsZero() {
		e = i.End.UTC().Format(layout)
	}
	return s + ":" + e
}
