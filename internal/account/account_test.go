package account

import (
	"path/filepath"
	"testing"

	"questbook/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "questbook.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestLoad_NoUser(t *testing.T) {
	store := newTestStore(t)

	if _, ok := Load(store); ok {
		t.Error("expected no profile on a fresh store")
	}
}

func TestRegister_CreatesProfile(t *testing.T) {
	store := newTestStore(t)

	created, err := Register(store, "ada@example.com", "Ada Lovelace", "ada", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if created.Token == "" {
		t.Error("expected a generated token")
	}

	loaded, ok := Load(store)
	if !ok {
		t.Fatal("expected profile after registration")
	}
	if loaded.Token != created.Token {
		t.Errorf("token mismatch: %q vs %q", loaded.Token, created.Token)
	}
	if loaded.Email != "ada@example.com" || loaded.Username != "ada" || loaded.FullName != "Ada Lovelace" {
		t.Errorf("profile fields wrong: %+v", loaded)
	}
}

func TestRegister_SecondUserRejected(t *testing.T) {
	store := newTestStore(t)

	if _, err := Register(store, "ada@example.com", "Ada Lovelace", "ada", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := Register(store, "grace@example.com", "Grace Hopper", "grace", ""); err == nil {
		t.Error("expected second registration to fail")
	}
}

func TestRegister_RequiresEmailAndUsername(t *testing.T) {
	store := newTestStore(t)

	if _, err := Register(store, "", "Ada Lovelace", "ada", ""); err == nil {
		t.Error("expected error for missing email")
	}
	if _, err := Register(store, "ada@example.com", "Ada Lovelace", "", ""); err == nil {
		t.Error("expected error for missing username")
	}
}
