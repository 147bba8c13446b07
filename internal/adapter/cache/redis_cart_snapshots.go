package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
	"github.com/RoshanShah43/rs-bazar/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisCartSnapshots persists each scope's cart as one JSON document under
// cart:<scope>. A TTL > 0 lets abandoned guest carts age out.
type RedisCartSnapshots struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartSnapshots(rdb *redis.Client, ttl time.Duration) *RedisCartSnapshots {
	return &RedisCartSnapshots{rdb: rdb, ttl: ttl}
}

func (s *RedisCartSnapshots) Load(ctx context.Context, scope string) ([]domain.LineItem, error) {
	raw, err := s.rdb.Get(ctx, "cart:"+scope).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return items, nil
}

func (s *RedisCartSnapshots) Save(ctx context.Context, scope string, items []domain.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, "cart:"+scope, raw, s.ttl).Err()
}

func (s *RedisCartSnapshots) Delete(ctx context.Context, scope string) error {
	return s.rdb.Del(ctx, "cart:"+scope).Err()
}

var _ usecase.CartSnapshots = (*RedisCartSnapshots)(nil)
