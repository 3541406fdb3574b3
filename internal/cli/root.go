package cli

import (
	"fmt"

	"questbook/internal/account"
	"questbook/internal/engine"
	"questbook/internal/models"
	"questbook/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Service
}

// loadUser loads storage and resolves the registered user, running the
// one-time legacy key migration on the way.
func (ctx *Context) loadUser() (models.Profile, error) {
	if err := ctx.Store.Load(); err != nil {
		return models.Profile{}, err
	}

	profile, ok := account.Load(ctx.Store)
	if !ok {
		return models.Profile{}, fmt.Errorf("no user registered, run 'questbook register' first")
	}

	if err := storage.MigrateLegacyKeys(ctx.Store, profile.Token); err != nil {
		// Migration failures are recoverable; dual-format keys just stay.
		fmt.Printf("Warning: legacy key migration failed: %v\n", err)
	}

	return profile, nil
}
