//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func exerciseBackend(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()
	key := "folio-test:" + time.Now().Format(time.RFC3339Nano)

	if _, ok, err := c.Get(ctx, key); ok || err != nil {
		t.Fatalf("fresh key = %v, %v; want miss", ok, err)
	}
	if err := c.Set(ctx, key, []byte("dark"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok || string(data) != "dark" {
		t.Fatalf("Get = %q, %v, %v", data, ok, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Error("deleted key should miss")
	}
}

func TestRedisCache_Integration(t *testing.T) {
	addr := os.Getenv("FOLIO_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("FOLIO_TEST_REDIS_ADDR not set, skipping integration test")
	}
	c, err := NewRedisCache(context.Background(), addr, "", 0)
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	defer c.Close()
	exerciseBackend(t, c)
}

func TestMongoCache_Integration(t *testing.T) {
	uri := os.Getenv("FOLIO_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("FOLIO_TEST_MONGO_URI not set, skipping integration test")
	}
	c, err := NewMongoCache(context.Background(), uri, "folio_test", "cache")
	if err != nil {
		t.Fatalf("NewMongoCache error: %v", err)
	}
	defer c.Close()
	exerciseBackend(t, c)
}
