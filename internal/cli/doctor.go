package cli

import (
	"fmt"
	"strconv"
	"time"

	"questbook/internal/account"
	"questbook/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: user registered
	var token string
	if storeReachable {
		if profile, ok := account.Load(ctx.Store); ok {
			fmt.Printf("✓ User registered: OK (%s)\n", profile.Username)
			token = profile.Token
		} else {
			fmt.Printf("⚠ User registered: WARNING\n")
			fmt.Printf("   No user found - run 'questbook register'\n")
		}
	} else {
		fmt.Printf("⊘ User registered: SKIPPED (storage not reachable)\n")
	}

	// Check 3: legacy keys migrated
	if token != "" {
		if err := checkLegacyKeys(ctx, token); err != nil {
			fmt.Printf("⚠ Legacy keys migrated: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Legacy keys migrated: OK\n")
		}
	}

	// Check 4: account clock sane
	if token != "" {
		if err := checkCreationDate(ctx, token); err != nil {
			fmt.Printf("❌ Account clock: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Account clock: OK\n")
		}
	}

	// Check 5: ledger integrity
	if token != "" {
		if err := checkLedger(ctx, token); err != nil {
			fmt.Printf("❌ Completion ledger: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Completion ledger: OK\n")
		}
	}

	// Check 6: system clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ System clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ System clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkLegacyKeys(ctx *Context, token string) error {
	if _, err := ctx.Store.Get(storage.MigrationDoneKey(token)); err != nil {
		return fmt.Errorf("migration marker missing - legacy keys migrate on next command")
	}
	return nil
}

func checkCreationDate(ctx *Context, token string) error {
	raw, err := ctx.Store.Get(storage.CreationDateKey(token))
	if err != nil {
		// Unset is fine; the clock starts on first use.
		return nil
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("creation date is not a timestamp: %q", raw)
	}

	created := time.UnixMilli(millis)
	if created.After(time.Now()) {
		return fmt.Errorf("creation date is in the future: %s", created.Format(time.RFC3339))
	}
	return nil
}

func checkLedger(ctx *Context, token string) error {
	records := ctx.Engine.Records(token)

	seen := make(map[int]bool, len(records))
	maxID := 0
	for _, r := range records {
		if !r.Valid() {
			return fmt.Errorf("record #%d has invalid fields", r.ID)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate record id found: %d", r.ID)
		}
		seen[r.ID] = true
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	if maxID > 0 && maxID < len(records) {
		return fmt.Errorf("ledger ids inconsistent: max id %d for %d records", maxID, len(records))
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
