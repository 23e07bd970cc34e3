package blacklist

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "blacklist:"

type Redis struct {
	RDB *redis.Client
}

func NewRedis(addr, pass string, db int) *Redis {
	return &Redis{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
	}
}

func (b *Redis) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.RDB.Set(ctx, keyPrefix+jti, "1", ttl).Err()
}

func (b *Redis) Has(ctx context.Context, jti string) (bool, error) {
	n, err := b.RDB.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
