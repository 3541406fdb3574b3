package cli

import (
	"fmt"

	"questbook/internal/engine"
)

type UndoCmd struct {
	Record int `arg:"" help:"Completion record id to undo."`
}

func (c *UndoCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	result, err := ctx.Engine.Undo(profile.Token, c.Record)
	if err != nil {
		return fmt.Errorf("failed to undo record %d: %w", c.Record, err)
	}

	switch result.Outcome {
	case engine.UndoRestored:
		fmt.Printf("Restored %q to your task list.\n", result.Record.TaskName)
	default:
		fmt.Printf("Record #%d removed: %s.\n", result.Record.ID, result.Outcome)
	}
	return nil
}
