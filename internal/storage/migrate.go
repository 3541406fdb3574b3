package storage

import "fmt"

// legacyMigrations maps each legacy global key to its token-scoped builder.
var legacyMigrations = map[string]func(token string) string{
	legacyClassKey: ClassKey,
	"question1Choice": func(token string) string {
		return QuestionChoiceKey(token, 1)
	},
	"question2Choice": func(token string) string {
		return QuestionChoiceKey(token, 2)
	},
	"question3Choice": func(token string) string {
		return QuestionChoiceKey(token, 3)
	},
	"profileImage": ProfileImageKey,
}

// MigrateLegacyKeys copies pre-multi-user global keys into the token scope,
// then removes the originals. It runs once per user; afterwards readers only
// consult token-scoped keys. The token-scoped value always wins if both
// exist.
func MigrateLegacyKeys(p Provider, token string) error {
	if token == "" {
		return fmt.Errorf("cannot migrate without a user token")
	}

	marker := MigrationDoneKey(token)
	if _, err := p.Get(marker); err == nil {
		return nil
	}

	for legacy, scoped := range legacyMigrations {
		value, err := p.Get(legacy)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read legacy key %q: %w", legacy, err)
		}

		target := scoped(token)
		if _, err := p.Get(target); err == ErrNotFound {
			if err := p.Set(target, value); err != nil {
				return fmt.Errorf("failed to migrate %q: %w", legacy, err)
			}
		}

		if err := p.Delete(legacy); err != nil {
			return fmt.Errorf("failed to remove legacy key %q: %w", legacy, err)
		}
	}

	return p.Set(marker, "1")
}
