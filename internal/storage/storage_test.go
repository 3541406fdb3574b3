package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()

	store := NewJSONStore(filepath.Join(t.TempDir(), "questbook.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestJSONStore_GetMissingKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("nope")
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound for missing key, got %v", err)
	}
}

func TestJSONStore_SetGetDelete(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set("userToken", "abc123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := store.Get("userToken")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "abc123" {
		t.Errorf("expected abc123, got %q", value)
	}

	if err := store.Delete("userToken"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get("userToken"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestJSONStore_PersistsAcrossLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questbook.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("themePreference", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	value, err := reopened.Get("themePreference")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if value != "dark" {
		t.Errorf("expected dark, got %q", value)
	}
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questbook.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected second Init to fail, got nil")
	}
}
