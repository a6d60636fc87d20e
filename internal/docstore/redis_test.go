package docstore

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisBackend(t *testing.T) {
	client := getRedisClient(t)
	prefix := "custodian-test:" + t.Name() + ":"
	ctx := context.Background()
	client.Del(ctx, prefix+"items.json", prefix+"owners.json")

	b := NewRedisFromClient(client, prefix)
	defer b.Close()
	t.Cleanup(func() {
		cleanup := redis.NewClient(&redis.Options{Addr: client.Options().Addr})
		cleanup.Del(context.Background(), prefix+"items.json", prefix+"owners.json")
		cleanup.Close()
	})

	exerciseBackend(t, b)
}

func TestNewRedisRequiresAddr(t *testing.T) {
	_, err := NewRedis(context.Background(), RedisConfig{})
	require.Error(t, err)
}
