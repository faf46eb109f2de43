package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/domain/entity"
)

func TestRedisReportCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	cache := NewRedisReportCache(client)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	draft := &entity.ReportDraft{
		Summary:    "Good month.",
		Highlights: []string{"Sales up"},
		Metrics:    []entity.ReportMetric{{Label: "Net", Value: "300"}},
	}
	require.NoError(t, cache.Set(ctx, "k", draft, time.Hour))

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, draft.Summary, got.Summary)
	assert.Equal(t, draft.Metrics, got.Metrics)

	server.FastForward(2 * time.Hour)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
