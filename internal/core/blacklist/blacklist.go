package blacklist

import (
	"context"
	"sync"
	"time"
)

// Blacklist 按 jti 吊销 refresh token（登出 / 轮换后的旧 token）。
// 条目只需要活到 token 自身过期为止，所以都带 TTL。
type Blacklist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Has(ctx context.Context, jti string) (bool, error)
}

// sweepEvery Add 每累计这么多次就把整张表里过期的条目清掉一轮
const sweepEvery = 64

// Memory 无 redis 配置时的进程内实现，测试也用它
type Memory struct {
	mu   sync.Mutex
	m    map[string]time.Time // jti -> 过期时刻
	adds int
}

func NewMemory() *Memory { return &Memory{m: make(map[string]time.Time)} }

func (b *Memory) Add(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.m[jti] = time.Now().Add(ttl)
	b.adds++
	if b.adds >= sweepEvery {
		b.adds = 0
		now := time.Now()
		for k, exp := range b.m {
			if now.After(exp) {
				delete(b.m, k)
			}
		}
	}
	return nil
}

func (b *Memory) Has(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.m[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(b.m, jti)
		return false, nil
	}
	return true, nil
}
