package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCacheRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := NewStatsCache(mr.Addr())

	stats := &Stats{
		TotalDonors: 2,
		GrandTotal:  170_000_000,
		Cash:        KindStat{Count: 1, Total: 50_000_000},
	}
	cache.Set(context.Background(), DateRange{}, stats)

	got, ok := cache.Get(context.Background(), DateRange{})
	require.True(t, ok)
	assert.Equal(t, stats.TotalDonors, got.TotalDonors)
	assert.Equal(t, stats.GrandTotal, got.GrandTotal)
	assert.Equal(t, stats.Cash, got.Cash)
}

func TestStatsCacheKeyPerRange(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := NewStatsCache(mr.Addr())
	cache.Set(context.Background(), DateRange{}, &Stats{TotalDonors: 1})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	_, ok := cache.Get(context.Background(), DateRange{From: &from})
	assert.False(t, ok, "khoảng thời gian khác không được trúng cache")
}

func TestStatsCacheDisabled(t *testing.T) {
	cache := NewStatsCache("")

	cache.Set(context.Background(), DateRange{}, &Stats{TotalDonors: 1})
	_, ok := cache.Get(context.Background(), DateRange{})
	assert.False(t, ok)

	var nilCache *StatsCache
	_, ok = nilCache.Get(context.Background(), DateRange{})
	assert.False(t, ok)
}

func TestStatsCacheInvalidate(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := NewStatsCache(mr.Addr())
	cache.Set(context.Background(), DateRange{}, &Stats{TotalDonors: 5})

	cache.Invalidate(context.Background())

	_, ok := cache.Get(context.Background(), DateRange{})
	assert.False(t, ok)
}
