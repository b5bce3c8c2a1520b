package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// TestRedisCache runs against MUSICMAP_TEST_REDIS_URL when set.
func TestRedisCache(t *testing.T) {
	url := os.Getenv("MUSICMAP_TEST_REDIS_URL")
	if url == "" {
		t.Skip("MUSICMAP_TEST_REDIS_URL not set")
	}
	ctx := context.Background()

	c, err := NewRedisCache(ctx, url)
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	defer c.Close()

	key := Keyer{Prefix: "musicmap-test:"}.ArtifactKey("wasm", "svg", []byte(t.Name()))
	defer c.Delete(ctx, key)

	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Fatalf("Get before Set = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("<svg/>"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Errorf("Get = (%q, %v, %v)", data, hit, err)
	}
}

func TestNewRedisCache_BadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "http://nope"); err == nil {
		t.Error("NewRedisCache should reject a non-redis URL")
	}
}
