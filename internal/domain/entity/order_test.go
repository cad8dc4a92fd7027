package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedeja/delivery-api/internal/domain/entity"
)

func TestOrderCanTransition_FluxoNormal(t *testing.T) {
	steps := []string{
		entity.OrderStatusPending, entity.OrderStatusAccepted, entity.OrderStatusPreparing,
		entity.OrderStatusReady, entity.OrderStatusDelivering, entity.OrderStatusCompleted,
	}

	o := &entity.Order{Status: steps[0]}
	for i := 1; i < len(steps); i++ {
		require.True(t, o.CanTransition(steps[i]), "%s → %s deve ser permitido", o.Status, steps[i])
		o.ApplyTransition(steps[i], time.Now())
	}
	assert.Equal(t, entity.OrderStatusCompleted, o.Status)
}

func TestOrderCanTransition_SemPularEtapas(t *testing.T) {
	o := &entity.Order{Status: entity.OrderStatusPending}

	assert.False(t, o.CanTransition(entity.OrderStatusPreparing))
	assert.False(t, o.CanTransition(entity.OrderStatusCompleted))
	assert.False(t, o.CanTransition(entity.OrderStatusPending), "auto-transição não é permitida")
}

func TestOrderCanTransition_RetiradaNoBalcao(t *testing.T) {
	// ready → completed sem passar por delivering (retirada no balcão).
	o := &entity.Order{Status: entity.OrderStatusReady}
	assert.True(t, o.CanTransition(entity.OrderStatusCompleted))
}

func TestOrderCanTransition_CancelamentoDeQualquerNaoTerminal(t *testing.T) {
	for _, st := range []string{
		entity.OrderStatusPending, entity.OrderStatusAccepted, entity.OrderStatusPreparing,
		entity.OrderStatusReady, entity.OrderStatusDelivering,
	} {
		o := &entity.Order{Status: st}
		assert.True(t, o.CanTransition(entity.OrderStatusCancelled), "cancelar a partir de %s", st)
	}
}

func TestOrderCanTransition_TerminaisSaoFinais(t *testing.T) {
	for _, st := range []string{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		o := &entity.Order{Status: st}
		for _, target := range []string{
			entity.OrderStatusPending, entity.OrderStatusAccepted, entity.OrderStatusCancelled,
			entity.OrderStatusCompleted,
		} {
			assert.False(t, o.CanTransition(target), "%s → %s", st, target)
		}
	}
}

func TestOrderApplyTransition_CarimbaOHorario(t *testing.T) {
	at := time.Date(2024, 6, 10, 19, 30, 0, 0, time.UTC)
	o := &entity.Order{Status: entity.OrderStatusPending}

	o.ApplyTransition(entity.OrderStatusAccepted, at)

	assert.Equal(t, entity.OrderStatusAccepted, o.Status)
	require.NotNil(t, o.AcceptedAt)
	assert.Equal(t, at, *o.AcceptedAt)
	assert.Equal(t, at, o.UpdatedAt)
	assert.Nil(t, o.PreparingAt, "etapas não atingidas permanecem nulas")

	o.ApplyTransition(entity.OrderStatusCancelled, at.Add(5*time.Minute))
	require.NotNil(t, o.CancelledAt)
	assert.Equal(t, at.Add(5*time.Minute), *o.CancelledAt)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, entity.IsValidStatus(entity.OrderStatusDelivering))
	assert.False(t, entity.IsValidStatus("shipped"))
	assert.False(t, entity.IsValidStatus(""))
}
