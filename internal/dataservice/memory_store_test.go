package dataservice

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, ok := store.Get(ctx, CategoryGames); ok {
		t.Fatal("expected miss on empty store")
	}

	entry := Entry{Payload: json.RawMessage(`{"x":1}`), FetchedAt: time.Now()}
	store.Set(ctx, CategoryGames, entry)

	got, ok := store.Get(ctx, CategoryGames)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got.Payload) != `{"x":1}` {
		t.Fatalf("unexpected payload: %s", got.Payload)
	}
}

func TestMemoryStoreKeysSorted(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, CategoryNews, Entry{})
	store.Set(ctx, CategoryGames, Entry{})

	keys := store.Keys(ctx)
	if len(keys) != 2 || keys[0] != CategoryGames || keys[1] != CategoryNews {
		t.Fatalf("expected sorted keys, got %v", keys)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, CategoryGames, Entry{})
	store.Clear(ctx)

	if _, ok := store.Get(ctx, CategoryGames); ok {
		t.Fatal("expected miss after clear")
	}
	if keys := store.Keys(ctx); len(keys) != 0 {
		t.Fatalf("expected no keys after clear, got %v", keys)
	}
}
