package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

func TestMemoryCacheSetGet(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "uni:list:students", []string{"a", "b"}, time.Minute))

	var out []string
	require.NoError(t, repo.Get(ctx, "uni:list:students", &out))
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestMemoryCacheMiss(t *testing.T) {
	repo := NewMemoryCacheRepository()

	var out []string
	err := repo.Get(context.Background(), "uni:list:students", &out)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
}

func TestMemoryCacheExpiry(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "v", time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	var out string
	err := repo.Get(ctx, "k", &out)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "v", 0))

	var out string
	require.NoError(t, repo.Get(ctx, "k", &out))
	assert.Equal(t, "v", out)
}

func TestMemoryCacheDeleteByPattern(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "uni:list:students", "s", time.Minute))
	require.NoError(t, repo.Set(ctx, "uni:list:teachers", "t", time.Minute))
	require.NoError(t, repo.Set(ctx, "uni:report:debtors", "d", time.Minute))

	// exact key
	require.NoError(t, repo.DeleteByPattern(ctx, "uni:list:students"))
	var out string
	assert.True(t, errors.Is(repo.Get(ctx, "uni:list:students", &out), appErrors.ErrCacheMiss))
	require.NoError(t, repo.Get(ctx, "uni:list:teachers", &out))

	// wildcard prefix
	require.NoError(t, repo.DeleteByPattern(ctx, "uni:report:*"))
	assert.True(t, errors.Is(repo.Get(ctx, "uni:report:debtors", &out), appErrors.ErrCacheMiss))
}

func TestMemoryCacheHandsOutCopies(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []string{"original"}, time.Minute))

	var first []string
	require.NoError(t, repo.Get(ctx, "k", &first))
	first[0] = "mutated"

	var second []string
	require.NoError(t, repo.Get(ctx, "k", &second))
	assert.Equal(t, []string{"original"}, second)
}
