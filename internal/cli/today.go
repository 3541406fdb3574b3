package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"questbook/internal/engine"
	"questbook/internal/models"
)

type TodayCmd struct {
	NoQuote bool `help:"Skip the daily quote."`
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	canceledStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	quoteStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (c *TodayCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	content, err := ctx.Engine.SelectDailyContent(profile.Token)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Day %d", content.AccountAge)))

	if !c.NoQuote {
		quote := ctx.Engine.DailyQuote()
		attribution := quote.Author
		if quote.Origin != "" {
			attribution += ", " + quote.Origin
		}
		fmt.Println(quoteStyle.Render(fmt.Sprintf("%q — %s", quote.QuoteText, attribution)))
	}
	fmt.Println()

	fmt.Println(panelStyle.Render(renderWeeklyTrial(content.WeeklyTrial, currentTheme(ctx))))
	fmt.Println()

	if content.Fallback != engine.FallbackNone {
		if content.Fallback == engine.FallbackNoClassKey {
			fmt.Println("Run 'questbook onboard' to receive your quest line.")
		}
		return nil
	}

	fmt.Println(titleStyle.Render("Daily quests"))
	for i, task := range content.Tasks {
		fmt.Printf("  %d. %s\n", i+1, renderTask(task))
	}

	additional := ctx.Engine.AdditionalTasks(profile.Token)
	if len(additional) > 0 {
		fmt.Println()
		fmt.Println(titleStyle.Render("Your tasks"))
		for _, task := range additional {
			fmt.Printf("  [%s] %s\n", task.ID, task.Text)
		}
	}

	return nil
}

func renderWeeklyTrial(trial models.WeeklyTrial, theme string) string {
	md := fmt.Sprintf("**%s**\n\n%s", trial.Title, trial.Description)
	if trial.WeeklyTrialSummary != "" {
		md += fmt.Sprintf("\n\n*This week:* %s", trial.WeeklyTrialSummary)
	}
	out, err := glamour.Render(md, theme)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

func renderTask(task models.DailyTask) string {
	switch task.Status {
	case models.TaskStatusCompleted:
		return doneStyle.Render("✓ " + task.Text)
	case models.TaskStatusCanceled:
		return canceledStyle.Render(task.Text)
	default:
		return task.Text
	}
}
