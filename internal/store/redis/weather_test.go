package redis

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestWeatherCacheRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		_, client := newTestStore(t)
		repo := NewWeatherCacheRepository(client)

		payload, err := repo.Get(ctx, "r1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if payload != nil {
			t.Errorf("Expected nil payload on miss, got %s", payload)
		}
	})

	t.Run("set then get returns the verbatim payload", func(t *testing.T) {
		_, client := newTestStore(t)
		repo := NewWeatherCacheRepository(client)

		want := json.RawMessage(`{"main":{"temp":71.2}}`)
		if err := repo.Set(ctx, "r1", want, time.Hour); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := repo.Get(ctx, "r1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})

	t.Run("entry expires after the ttl", func(t *testing.T) {
		mr, client := newTestStore(t)
		repo := NewWeatherCacheRepository(client)

		if err := repo.Set(ctx, "r1", json.RawMessage(`{}`), time.Hour); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		mr.FastForward(time.Hour + time.Second)

		payload, err := repo.Get(ctx, "r1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if payload != nil {
			t.Errorf("Expected expired entry to be a miss, got %s", payload)
		}
	})
}
