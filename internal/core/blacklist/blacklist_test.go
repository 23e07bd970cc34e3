package blacklist

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryAddHas(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()

	ok, err := b.Has(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, b.Add(ctx, "jti-1", time.Hour))
	ok, err = b.Has(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()

	// ttl<=0 的条目本身已过期，不入黑名单
	require.NoError(t, b.Add(ctx, "expired", -time.Second))
	ok, err := b.Has(ctx, "expired")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, b.Add(ctx, "short", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	ok, err = b.Has(ctx, "short")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemorySweepsExpiredOnAdd(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()

	// 塞一批很快过期、且之后再也不会被 Has 探到的 jti
	for i := 0; i < sweepEvery; i++ {
		require.NoError(t, b.Add(ctx, "stale-"+strconv.Itoa(i), time.Millisecond))
	}
	time.Sleep(5 * time.Millisecond)

	// 下一轮写入触发清扫，过期条目全部回收
	for i := 0; i < sweepEvery; i++ {
		require.NoError(t, b.Add(ctx, "live-"+strconv.Itoa(i), time.Hour))
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	require.Len(t, b.m, sweepEvery)
	_, stale := b.m["stale-0"]
	require.False(t, stale)
}
