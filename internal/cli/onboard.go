package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"questbook/internal/storage"
)

type OnboardCmd struct {
	Force bool `help:"Re-run onboarding and overwrite the existing class."`
}

func (c *OnboardCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	if existing := ctx.Engine.ClassKey(profile.Token); existing != "" && !c.Force {
		if class, ok := ctx.Engine.Library().Class(existing); ok {
			fmt.Printf("You are already a %s. Use --force to restart.\n", class.Name)
		} else {
			fmt.Println("You already have a hero class. Use --force to restart.")
		}
		return nil
	}

	var path, tier, consequence string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which path calls to you?").
				Options(
					huh.NewOption("The mind: focus, learning, reflection", "1"),
					huh.NewOption("The body: strength, movement, recovery", "2"),
					huh.NewOption("Both, in balance", "3"),
				).
				Value(&path),
			huh.NewSelect[string]().
				Title("How hard do you want to push?").
				Options(
					huh.NewOption("Ease me in", "beginner"),
					huh.NewOption("Epic or nothing", "epic"),
				).
				Value(&tier),
			huh.NewSelect[string]().
				Title("Should missed days have consequences?").
				Options(
					huh.NewOption("Yes, hold me to it", "consequence"),
					huh.NewOption("No, life happens", "none"),
				).
				Value(&consequence),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	classKey := fmt.Sprintf("%s-%s-%s", path, tier, consequence)
	if err := ctx.Engine.SetClassKey(profile.Token, classKey, c.Force); err != nil {
		return err
	}
	for i, answer := range []string{path, tier, consequence} {
		if err := ctx.Store.Set(storage.QuestionChoiceKey(profile.Token, i+1), answer); err != nil {
			return err
		}
	}

	if class, ok := ctx.Engine.Library().Class(classKey); ok {
		fmt.Printf("\nYou are a %s.\n%s\n", class.Name, class.Description)
	} else {
		fmt.Println("\nYour class has been recorded.")
	}
	fmt.Println("Run 'questbook today' to see your quests.")
	return nil
}
