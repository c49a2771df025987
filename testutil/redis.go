package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// testRedisDB is the logical database integration tests use. It is flushed
// before and after every test.
const testRedisDB = 15

// NewRedisClient connects to the Redis server named by TEST_REDIS_ADDR.
//
// The test is skipped automatically if TEST_REDIS_ADDR is not set. The
// client's logical database is flushed before the test and again, together
// with closing the client, when the test finishes.
func NewRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set; skipping integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: testRedisDB})
	if err := client.FlushDB(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Fatalf("testutil.NewRedisClient: flush: %v", err)
	}

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	return client
}
