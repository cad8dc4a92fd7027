package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/pedeja/delivery-api/internal/domain/repository"
)

var _ repository.Cache = (*Redis)(nil)

// Redis implementação do porto de cache sobre Redis.
// A expiração fica a cargo do próprio Redis (SET com TTL).
type Redis struct {
	client *redis.Client
}

// NewRedis constrói o adaptador com um cliente já configurado.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get devolve (valor, true) em hit; redis.Nil conta como miss, não erro.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache.Get %s: %w", key, err)
	}
	return raw, true, nil
}

// Set grava o valor com a validade dada.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache.Set %s: %w", key, err)
	}
	return nil
}

// Del remove as chaves indicadas.
func (r *Redis) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache.Del: %w", err)
	}
	return nil
}
