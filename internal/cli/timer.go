package cli

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"questbook/internal/models"
	"questbook/internal/timer"
	"questbook/internal/tui"
)

type TimerCmd struct {
	Daily int    `short:"d" help:"Daily quest number (1 or 2)." default:"0"`
	Task  string `short:"t" help:"Additional task id."`
}

func (c *TimerCmd) Validate() error {
	if (c.Daily == 0) == (c.Task == "") {
		return fmt.Errorf("specify exactly one of --daily or --task")
	}
	return nil
}

func (c *TimerCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	taskText, err := c.resolveTaskText(ctx, profile.Token)
	if err != nil {
		return err
	}

	lock, err := timer.Acquire(filepath.Dir(ctx.Store.Path()))
	if err != nil {
		return err
	}
	defer lock.Release()

	session := timer.New(taskText)
	if err := session.Start(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(session), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("timer failed: %w", err)
	}

	model, ok := final.(tui.Model)
	if !ok || model.Outcome() != tui.OutcomeFinished {
		fmt.Println("Session discarded. Nothing recorded.")
		return nil
	}

	elapsed := model.Elapsed().Round(time.Second)
	if c.Daily > 0 {
		record, err := ctx.Engine.CompleteDaily(profile.Token, c.Daily-1)
		if err != nil {
			return err
		}
		fmt.Printf("⭐ Quest complete after %s: %s (record #%d)\n", elapsed, record.TaskName, record.ID)
		return nil
	}

	record, err := ctx.Engine.CompleteAdditional(profile.Token, c.Task)
	if err != nil {
		return err
	}
	fmt.Printf("⭐ Task complete after %s: %s (record #%d)\n", elapsed, record.TaskName, record.ID)
	return nil
}

func (c *TimerCmd) resolveTaskText(ctx *Context, token string) (string, error) {
	if c.Daily > 0 {
		content, err := ctx.Engine.SelectDailyContent(token)
		if err != nil {
			return "", err
		}
		idx := c.Daily - 1
		if idx >= len(content.Tasks) {
			return "", fmt.Errorf("no daily quest %d today", c.Daily)
		}
		task := content.Tasks[idx]
		if task.Status != models.TaskStatusDefault {
			return "", fmt.Errorf("quest %d is already %s", c.Daily, task.Status)
		}
		return task.Text, nil
	}

	for _, task := range ctx.Engine.AdditionalTasks(token) {
		if task.ID == c.Task {
			return task.Text, nil
		}
	}
	return "", fmt.Errorf("no task with id %s", c.Task)
}
