package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath   *DebugDBPathCmd   `cmd:"" help:"Show storage path."`
	AgeUp    *DebugAgeUpCmd    `cmd:"" help:"Advance the account clock by one day."`
	AgeDown  *DebugAgeDownCmd  `cmd:"" help:"Rewind the account clock by one day."`
	DumpDay  *DebugDumpDayCmd  `cmd:"" help:"Dump today's task snapshot as JSON."`
	DumpLog  *DebugDumpLogCmd  `cmd:"" help:"Dump the completion ledger as JSON."`
	ClassKey *DebugClassKeyCmd `cmd:"" help:"Show the stored class key."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.Path(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugAgeUpCmd struct{}

func (cmd *DebugAgeUpCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	if err := ctx.Engine.AdjustCreationDay(profile.Token, 1); err != nil {
		return fmt.Errorf("failed to adjust account clock: %w", err)
	}

	age, err := ctx.Engine.AccountAge(profile.Token)
	if err != nil {
		return err
	}
	fmt.Printf("Account age is now day %d.\n", age)
	return nil
}

type DebugAgeDownCmd struct{}

func (cmd *DebugAgeDownCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	if err := ctx.Engine.AdjustCreationDay(profile.Token, -1); err != nil {
		return fmt.Errorf("failed to adjust account clock: %w", err)
	}

	age, err := ctx.Engine.AccountAge(profile.Token)
	if err != nil {
		return err
	}
	fmt.Printf("Account age is now day %d.\n", age)
	return nil
}

type DebugDumpDayCmd struct{}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	state := ctx.Engine.DailyTasksState(profile.Token)
	if state == nil {
		return fmt.Errorf("no daily task snapshot stored, run 'questbook today' first")
	}

	jsonBytes, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpLogCmd struct{}

func (cmd *DebugDumpLogCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	records := ctx.Engine.Records(profile.Token)
	jsonBytes, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugClassKeyCmd struct{}

func (cmd *DebugClassKeyCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	classKey := ctx.Engine.ClassKey(profile.Token)
	if classKey == "" {
		return fmt.Errorf("no class key stored, run 'questbook onboard' first")
	}

	fmt.Println(classKey)
	return nil
}
