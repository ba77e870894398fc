package prefstore

import (
	"context"
	"errors"
	"testing"
)

func openBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()

	store, err := OpenBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadgerStore failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

func TestBadgerStore_SetGet(t *testing.T) {
	store := openBadgerStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "key1", []byte("value1")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := store.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(data) != "value1" {
		t.Errorf("Get = %q, want %q", data, "value1")
	}
}

func TestBadgerStore_GetMissing(t *testing.T) {
	store := openBadgerStore(t)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing key: expected ErrNotFound, got %v", err)
	}
}

func TestBadgerStore_Overwrite(t *testing.T) {
	store := openBadgerStore(t)
	ctx := context.Background()

	store.Set(ctx, "key", []byte("old"))
	store.Set(ctx, "key", []byte("new"))

	data, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("Get = %q, want %q", data, "new")
	}
}

func TestBadgerStore_ContainsDelete(t *testing.T) {
	store := openBadgerStore(t)
	ctx := context.Background()

	if ok, _ := store.Contains(ctx, "key"); ok {
		t.Error("Contains should be false for missing key")
	}

	store.Set(ctx, "key", []byte("value"))
	if ok, _ := store.Contains(ctx, "key"); !ok {
		t.Error("Contains should be true for existing key")
	}

	if err := store.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if ok, _ := store.Contains(ctx, "key"); ok {
		t.Error("key should be gone after Delete")
	}
}

// TestSettings_BadgerLocalTier runs the accessor with Badger as the local
// store alongside the default in-memory roaming tier.
func TestSettings_BadgerLocalTier(t *testing.T) {
	store := openBadgerStore(t)
	ctx := context.Background()

	s := New(testSchema(), WithLocalStore(store))

	Set(ctx, s, "DeviceId", "abc123")
	if ok, _ := store.Contains(ctx, "DeviceId"); !ok {
		t.Error("pinned write should reach the Badger store")
	}
	if got := Get[string](ctx, s, "DeviceId"); got != "abc123" {
		t.Errorf("DeviceId = %q, want %q", got, "abc123")
	}

	Set(ctx, s, "Theme", "dark")
	if ok, _ := store.Contains(ctx, "Theme"); ok {
		t.Error("non-pinned write must not reach the local Badger store")
	}
}
