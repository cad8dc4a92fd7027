// Package cache implementações do porto de cache com TTL: em memória
// (processo local, usada em desenvolvimento e testes) e Redis.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pedeja/delivery-api/internal/domain/repository"
)

var _ repository.Cache = (*Memory)(nil)

// Memory cache em memória com expiração por TTL.
// Entradas vencidas são tratadas como ausentes e removidas no acesso.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// NewMemory constrói o cache com o relógio padrão.
func NewMemory() *Memory {
	return NewMemoryWithClock(time.Now)
}

// NewMemoryWithClock permite injetar o relógio (testes de TTL).
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{items: make(map[string]memoryItem), now: now}
}

// Get devolve (valor, true) em hit; entrada vencida conta como miss.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	it, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if m.now().After(it.expiresAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	return it.value, true, nil
}

// Set grava o valor com a validade dada.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	m.items[key] = memoryItem{value: value, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

// Del remove as chaves indicadas.
func (m *Memory) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.items, k)
	}
	m.mu.Unlock()
	return nil
}
