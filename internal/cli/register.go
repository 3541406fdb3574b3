package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"questbook/internal/account"
)

type RegisterCmd struct {
	Email    string `short:"e" help:"Email address."`
	Name     string `short:"n" help:"Full name."`
	Username string `short:"u" help:"Username."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	email := c.Email
	fullName := c.Name
	username := c.Username
	var password string

	// Prompt for anything not given as a flag.
	var fields []huh.Field
	if email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(&email))
	}
	if fullName == "" {
		fields = append(fields, huh.NewInput().Title("Full name").Value(&fullName))
	}
	if username == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(&username))
	}
	fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return err
	}

	profile, err := account.Register(ctx.Store, email, fullName, username, password)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s! Your profile is ready.\n", profile.Username)
	fmt.Println("Next: 'questbook onboard' to discover your hero class.")
	return nil
}
