package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized questbook storage at %s\n", ctx.Store.Path())
	fmt.Println("Next: 'questbook register' to create your profile.")
	return nil
}
