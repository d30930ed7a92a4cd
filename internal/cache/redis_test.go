package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	prev := GetClient()
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(prev)
		_ = rdb.Close()
	})
	return mr
}

func TestAside(t *testing.T) {
	ctx := context.Background()

	t.Run("miss fetches and populates cache", func(t *testing.T) {
		withMiniredis(t)

		fetched := 0
		var got cachedThing
		err := Aside(ctx, "thing:1", &got, time.Minute, func() error {
			fetched++
			got = cachedThing{ID: 1, Name: "first"}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, fetched)
		assert.Equal(t, "first", got.Name)

		// Second read is served from cache: fetch must not run again.
		var again cachedThing
		err = Aside(ctx, "thing:1", &again, time.Minute, func() error {
			fetched++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, fetched)
		assert.Equal(t, "first", again.Name)
	})

	t.Run("fetch error propagates and nothing is cached", func(t *testing.T) {
		withMiniredis(t)

		wantErr := errors.New("db down")
		var got cachedThing
		err := Aside(ctx, "thing:2", &got, time.Minute, func() error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)

		found, err := GetJSON(ctx, "thing:2", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("nil client degrades to fetch-through", func(t *testing.T) {
		prev := GetClient()
		SetClient(nil)
		t.Cleanup(func() { SetClient(prev) })

		fetched := 0
		var got cachedThing
		for i := 0; i < 2; i++ {
			err := Aside(ctx, "thing:3", &got, time.Minute, func() error {
				fetched++
				got = cachedThing{ID: 3}
				return nil
			})
			require.NoError(t, err)
		}
		assert.Equal(t, 2, fetched, "every call must hit the source when cache is off")
	})
}

func TestInvalidateUser(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(7), cachedThing{ID: 7}, time.Minute))
	assert.True(t, mr.Exists("user:7"))

	InvalidateUser(ctx, 7)
	assert.False(t, mr.Exists("user:7"))
}
