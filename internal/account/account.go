package account

import (
	"fmt"

	"github.com/google/uuid"

	"questbook/internal/models"
	"questbook/internal/storage"
)

// Load reads the registered profile, or ok=false when no user exists yet.
func Load(store storage.Provider) (models.Profile, bool) {
	token, err := store.Get(storage.KeyUserToken)
	if err != nil || token == "" {
		return models.Profile{}, false
	}

	p := models.Profile{Token: token}
	p.Email, _ = store.Get(storage.KeyUserEmail)
	p.FullName, _ = store.Get(storage.KeyUserFullName)
	p.Username, _ = store.Get(storage.KeyUserUsername)
	return p, true
}

// Register creates the local user: profile fields in the key-value store,
// password in the OS keyring, token a fresh uuid. Only one user per store;
// registering over an existing profile fails.
func Register(store storage.Provider, email, fullName, username, password string) (models.Profile, error) {
	if email == "" || username == "" {
		return models.Profile{}, fmt.Errorf("email and username are required")
	}
	if _, exists := Load(store); exists {
		return models.Profile{}, fmt.Errorf("a user is already registered")
	}

	p := models.Profile{
		Token:    uuid.New().String(),
		Email:    email,
		FullName: fullName,
		Username: username,
	}

	if err := store.Set(storage.KeyUserToken, p.Token); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save user token: %w", err)
	}
	if err := store.Set(storage.KeyUserEmail, p.Email); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save email: %w", err)
	}
	if err := store.Set(storage.KeyUserFullName, p.FullName); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save full name: %w", err)
	}
	if err := store.Set(storage.KeyUserUsername, p.Username); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save username: %w", err)
	}

	if password != "" {
		if err := SetPassword(p.Token, password); err != nil {
			// Keyring problems must not block local use; the password is
			// only checked on explicit re-auth.
			return p, nil
		}
	}

	return p, nil
}
