package cli

import (
	"fmt"

	"questbook/internal/storage"
)

type ThemeCmd struct {
	Name string `arg:"" optional:"" help:"Theme name (dark|light)."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Name == "" {
		fmt.Println(currentTheme(ctx))
		return nil
	}
	if c.Name != "dark" && c.Name != "light" {
		return fmt.Errorf("unknown theme %q, expected dark or light", c.Name)
	}

	if err := ctx.Store.Set(storage.KeyThemePreference, c.Name); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s.\n", c.Name)
	return nil
}

// currentTheme reads the stored preference, defaulting to dark.
func currentTheme(ctx *Context) string {
	theme, err := ctx.Store.Get(storage.KeyThemePreference)
	if err != nil || theme == "" {
		return "dark"
	}
	return theme
}
