package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// Feed mantém, por estabelecimento, o histórico de notificações de pedidos
// novos. Cada Poll busca os pedidos mais recentes, compara com o conjunto de
// IDs já vistos e sintetiza notificações para os inéditos. O histórico é um
// FIFO limitado: ao exceder a capacidade, o mais antigo sai primeiro.
type Feed struct {
	orders   repository.OrderRepository
	fetch    int
	capacity int
	now      func() time.Time

	mu     sync.Mutex
	states map[string]*feedState
}

type feedState struct {
	primed        bool // primeiro poll apenas semeia o conjunto de vistos
	seen          map[string]struct{}
	notifications []dto.OrderNotificationDTO
}

// NewFeed constrói o feed. now nulo usa time.Now.
func NewFeed(orders repository.OrderRepository, fetch, capacity int, now func() time.Time) *Feed {
	if now == nil {
		now = time.Now
	}
	return &Feed{
		orders:   orders,
		fetch:    fetch,
		capacity: capacity,
		now:      now,
		states:   make(map[string]*feedState),
	}
}

// Poll atualiza o feed do estabelecimento e devolve uma cópia do histórico,
// do mais antigo para o mais novo.
func (f *Feed) Poll(ctx context.Context, establishmentID string) ([]dto.OrderNotificationDTO, error) {
	recent, err := f.orders.ListRecent(ctx, establishmentID, f.fetch)
	if err != nil {
		return nil, fmt.Errorf("feed: pedidos recentes: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	st, ok := f.states[establishmentID]
	if !ok {
		st = &feedState{seen: make(map[string]struct{})}
		f.states[establishmentID] = st
	}

	// ListRecent devolve do mais novo para o mais antigo; percorremos ao
	// contrário para que as notificações entrem em ordem cronológica.
	for idx := len(recent) - 1; idx >= 0; idx-- {
		o := recent[idx]
		if _, dup := st.seen[o.ID]; dup {
			continue
		}
		st.seen[o.ID] = struct{}{}
		if !st.primed {
			continue // primeira rodada: semeia sem notificar
		}
		st.notifications = append(st.notifications, dto.OrderNotificationDTO{
			OrderID:      o.ID,
			Number:       o.Number,
			CustomerName: o.CustomerName,
			Total:        o.Total,
			Status:       o.Status,
			ReceivedAt:   f.now(),
		})
	}
	st.primed = true

	if over := len(st.notifications) - f.capacity; over > 0 {
		st.notifications = st.notifications[over:]
	}

	// O conjunto de vistos fica limitado à janela recente mais o histórico
	// retido; IDs que saíram de ambos não precisam ser lembrados.
	pruned := make(map[string]struct{}, len(recent)+len(st.notifications))
	for _, o := range recent {
		pruned[o.ID] = struct{}{}
	}
	for _, n := range st.notifications {
		pruned[n.OrderID] = struct{}{}
	}
	st.seen = pruned

	out := make([]dto.OrderNotificationDTO, len(st.notifications))
	copy(out, st.notifications)
	return out, nil
}

// Reset descarta o estado do estabelecimento (próximo poll volta a semear).
func (f *Feed) Reset(establishmentID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.states, establishmentID)
}
