package service

import (
	"context"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const statsCacheTTL = 60 * time.Second

// StatsCache đệm số liệu dashboard trên Redis.
// Client nil nghĩa là cache tắt, mọi thao tác thành no-op.
type StatsCache struct {
	Client *redis.Client
}

func NewStatsCache(addr string) *StatsCache {
	if addr == "" {
		return &StatsCache{}
	}
	return &StatsCache{Client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *StatsCache) Get(ctx context.Context, rng DateRange) (*Stats, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, cacheKey(rng)).Bytes()
	if err != nil {
		return nil, false
	}
	var stats Stats
	if err := sonic.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, rng DateRange, stats *Stats) {
	if c == nil || c.Client == nil {
		return
	}
	raw, err := sonic.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, cacheKey(rng), raw, statsCacheTTL).Err(); err != nil {
		log.Println("[WARN] Ghi cache dashboard:", err)
	}
}

// Invalidate xoá mọi key thống kê, gọi sau khi dữ liệu tài trợ thay đổi.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.Client == nil {
		return
	}
	iter := c.Client.Scan(ctx, 0, "dashboard:stats:*", 100).Iterator()
	for iter.Next(ctx) {
		c.Client.Del(ctx, iter.Val())
	}
}

func cacheKey(rng DateRange) string {
	key := "dashboard:stats:"
	if rng.From != nil {
		key += rng.From.Format("20060102")
	}
	key += "-"
	if rng.To != nil {
		key += rng.To.Format("20060102")
	}
	return key
}
