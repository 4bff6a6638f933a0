package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(client, ttl), mr
}

func TestCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	type payload struct {
		Location string `json:"location"`
		TempC    float64
	}

	in := payload{Location: "Paris", TempC: 21.5}
	if err := c.Set(context.Background(), "weather:paris", in); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var out payload
	if err := c.Get(context.Background(), "weather:paris", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

func TestCacheMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	var out map[string]string
	err := c.Get(context.Background(), "absent", &out)
	if !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}

func TestCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t, time.Second)

	if err := c.Set(context.Background(), "poi:rome", "colosseum"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	mr.FastForward(2 * time.Second)

	var out string
	err := c.Get(context.Background(), "poi:rome", &out)
	if !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss after expiry, got %v", err)
	}
}
