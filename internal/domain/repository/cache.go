package repository

import (
	"context"
	"time"
)

// Cache porto de cache limitado por TTL (chave -> valor serializado + validade).
// Os agregadores do dashboard recebem esta abstração por injeção; a aplicação
// escolhe entre a implementação Redis e a em memória.
type Cache interface {
	// Get devolve (valor, true) em hit; (nil, false) em miss ou entrada vencida.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
