package cache_test

import (
	"cinema/infras/otel/mocks"
	"cinema/shared/cache"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availability struct {
	ScreeningID string   `json:"screening_id"`
	Seats       []string `json:"seats"`
}

func TestRedisCache_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(db, mocks.NewOtel())
	ctx := context.Background()

	mock.ExpectSet("plain", []byte("value"), 10*time.Second).SetVal("OK")
	require.NoError(t, redisCache.Save(ctx, "plain", "value", 10))

	mock.ExpectSet("json", []byte(`{"screening_id":"s1","seats":["a"]}`), 5*time.Second).SetVal("OK")
	require.NoError(t, redisCache.Save(ctx, "json", availability{ScreeningID: "s1", Seats: []string{"a"}}, 5))

	mock.ExpectSet("broken", []byte("value"), time.Second).SetErr(errors.New("redis down"))
	assert.Error(t, redisCache.Save(ctx, "broken", "value", 1))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(db, mocks.NewOtel())
	ctx := context.Background()

	mock.ExpectGet("plain").SetVal("value")

	var plain string
	require.NoError(t, redisCache.Get(ctx, "plain", &plain))
	assert.Equal(t, "value", plain)

	mock.ExpectGet("json").SetVal(`{"screening_id":"s1","seats":["a","b"]}`)

	var decoded availability
	require.NoError(t, redisCache.Get(ctx, "json", &decoded))
	assert.Equal(t, availability{ScreeningID: "s1", Seats: []string{"a", "b"}}, decoded)

	mock.ExpectGet("missing").RedisNil()

	err := redisCache.Get(ctx, "missing", &decoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, cache.Nil)

	mock.ExpectGet("garbage").SetVal("{not json")
	assert.Error(t, redisCache.Get(ctx, "garbage", &decoded))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(db, mocks.NewOtel())

	mock.ExpectDel("availability:s1").SetVal(1)
	require.NoError(t, redisCache.Delete(context.Background(), "availability:s1"))

	mock.ExpectDel("availability:s2").SetErr(errors.New("redis down"))
	assert.Error(t, redisCache.Delete(context.Background(), "availability:s2"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Clear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(db, mocks.NewOtel())

	mock.ExpectScan(0, "movies:*", 100).SetVal([]string{"movies:a", "movies:b"}, 0)
	mock.ExpectDel("movies:a").SetVal(1)
	mock.ExpectDel("movies:b").SetVal(1)

	require.NoError(t, redisCache.Clear(context.Background(), "movies:*"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
