package storage

import "testing"

func TestMigrateLegacyKeys_CopiesGlobalClassKey(t *testing.T) {
	store := newTestStore(t)
	token := "tok-1"

	if err := store.Set(legacyClassKey, "1-epic-consequence"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := MigrateLegacyKeys(store, token); err != nil {
		t.Fatalf("MigrateLegacyKeys failed: %v", err)
	}

	value, err := store.Get(ClassKey(token))
	if err != nil {
		t.Fatalf("Get migrated key failed: %v", err)
	}
	if value != "1-epic-consequence" {
		t.Errorf("expected migrated class key, got %q", value)
	}

	if _, err := store.Get(legacyClassKey); err != ErrNotFound {
		t.Errorf("expected legacy key removed, got %v", err)
	}
}

func TestMigrateLegacyKeys_CopiesQuestionChoices(t *testing.T) {
	store := newTestStore(t)
	token := "tok-q"

	if err := store.Set("question2Choice", "epic"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := MigrateLegacyKeys(store, token); err != nil {
		t.Fatalf("MigrateLegacyKeys failed: %v", err)
	}

	value, err := store.Get(QuestionChoiceKey(token, 2))
	if err != nil {
		t.Fatalf("Get migrated key failed: %v", err)
	}
	if value != "epic" {
		t.Errorf("expected migrated answer, got %q", value)
	}
	if _, err := store.Get("question2Choice"); err != ErrNotFound {
		t.Errorf("expected legacy key removed, got %v", err)
	}
}

func TestMigrateLegacyKeys_TokenScopedValueWins(t *testing.T) {
	store := newTestStore(t)
	token := "tok-2"

	if err := store.Set(legacyClassKey, "1-2-1-0"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ClassKey(token), "2-beginner-none"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := MigrateLegacyKeys(store, token); err != nil {
		t.Fatalf("MigrateLegacyKeys failed: %v", err)
	}

	value, err := store.Get(ClassKey(token))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "2-beginner-none" {
		t.Errorf("token-scoped value should win, got %q", value)
	}
}

func TestMigrateLegacyKeys_RunsOnce(t *testing.T) {
	store := newTestStore(t)
	token := "tok-3"

	if err := MigrateLegacyKeys(store, token); err != nil {
		t.Fatalf("first migration failed: %v", err)
	}

	// A legacy key appearing after the marker is ignored.
	if err := store.Set(legacyClassKey, "3-4-1-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := MigrateLegacyKeys(store, token); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}

	if _, err := store.Get(ClassKey(token)); err != ErrNotFound {
		t.Errorf("expected no class key after marker, got %v", err)
	}
}
