package account

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const keyringService = "questbook"

// ErrNoPassword is returned when no password is stored for the user.
var ErrNoPassword = errors.New("no password stored in keyring")

// SetPassword stores the user's password in the OS keyring, keyed by token.
func SetPassword(token, password string) error {
	if err := keyring.Set(keyringService, token, password); err != nil {
		return fmt.Errorf("failed to store password in keyring: %w", err)
	}
	return nil
}

// GetPassword retrieves the user's password from the OS keyring.
func GetPassword(token string) (string, error) {
	password, err := keyring.Get(keyringService, token)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNoPassword
		}
		return "", fmt.Errorf("keyring unavailable: %w", err)
	}
	return password, nil
}

// DeletePassword removes the stored password, used by data clear.
func DeletePassword(token string) error {
	err := keyring.Delete(keyringService, token)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete password from keyring: %w", err)
	}
	return nil
}
