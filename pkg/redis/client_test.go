package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestInitInvalidURL(t *testing.T) {
	err := Init("://invalid-url", "")
	assert.Error(t, err)
}

func TestSetClientAndBasicOpsWithUnreachableRedis(t *testing.T) {
	cli := goredis.NewClient(&goredis.Options{
		Addr:         "127.0.0.1:0", // invalid/unreachable
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
	})
	SetClient(cli)
	assert.NotNil(t, GetClient())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.Error(t, Set(ctx, "k", "v", time.Second))
	_, err := Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, Del(ctx, "k"))
	assert.Error(t, Publish(ctx, "ch", "payload"))
}

func TestBasicOpsRoundtrip(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable: %v", err)
	}
	defer srv.Close()
	SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))

	ctx := context.Background()

	assert.NoError(t, Set(ctx, "greeting", "hello", time.Minute))
	val, err := Get(ctx, "greeting")
	assert.NoError(t, err)
	assert.Equal(t, "hello", val)

	assert.NoError(t, Del(ctx, "greeting"))
	_, err = Get(ctx, "greeting")
	assert.ErrorIs(t, err, goredis.Nil)
}
