package cli

import "fmt"

type CompleteCmd struct {
	Daily int    `short:"d" help:"Daily quest number (1 or 2)." default:"0"`
	Task  string `short:"t" help:"Additional task id."`
}

func (c *CompleteCmd) Validate() error {
	if (c.Daily == 0) == (c.Task == "") {
		return fmt.Errorf("specify exactly one of --daily or --task")
	}
	return nil
}

func (c *CompleteCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	if c.Daily > 0 {
		record, err := ctx.Engine.CompleteDaily(profile.Token, c.Daily-1)
		if err != nil {
			return err
		}
		fmt.Printf("⭐ Quest complete: %s (%d min, record #%d)\n", record.TaskName, record.Duration, record.ID)
		return nil
	}

	record, err := ctx.Engine.CompleteAdditional(profile.Token, c.Task)
	if err != nil {
		return err
	}
	fmt.Printf("⭐ Task complete: %s (%d min, record #%d)\n", record.TaskName, record.Duration, record.ID)
	return nil
}

type CancelCmd struct {
	Daily int    `short:"d" help:"Daily quest number (1 or 2)." default:"0"`
	Task  string `short:"t" help:"Additional task id."`
}

func (c *CancelCmd) Validate() error {
	if (c.Daily == 0) == (c.Task == "") {
		return fmt.Errorf("specify exactly one of --daily or --task")
	}
	return nil
}

func (c *CancelCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	if c.Daily > 0 {
		if err := ctx.Engine.CancelDaily(profile.Token, c.Daily-1); err != nil {
			return err
		}
		fmt.Println("Quest canceled. It stays struck out until tomorrow.")
		return nil
	}

	// Canceling an additional task removes it outright.
	if err := ctx.Engine.RemoveAdditionalTask(profile.Token, c.Task); err != nil {
		return err
	}
	fmt.Println("Task removed.")
	return nil
}
