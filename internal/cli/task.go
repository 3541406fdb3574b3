package cli

import (
	"fmt"

	"github.com/google/uuid"

	"questbook/internal/models"
)

type TaskAddCmd struct {
	Text     string `arg:"" help:"Task text, e.g. 'Read (20 min)'."`
	Category string `short:"c" help:"Category (fitness|learning|mindfulness|social|creativity)." default:"general"`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	task := models.AdditionalTask{
		ID:       uuid.New().String(),
		Text:     c.Text,
		Category: c.Category,
	}
	if err := ctx.Engine.AddAdditionalTask(profile.Token, task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", c.Text, task.ID)
	return nil
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	tasks := ctx.Engine.AdditionalTasks(profile.Token)
	if len(tasks) == 0 {
		fmt.Println("No additional tasks. Add one with 'questbook task add'.")
		return nil
	}

	for _, task := range tasks {
		fmt.Printf("%s  %-40s %s\n", task.ID, task.Text, task.Category)
	}
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	if err := ctx.Engine.RemoveAdditionalTask(profile.Token, c.ID); err != nil {
		return err
	}

	fmt.Println("Task removed.")
	return nil
}
