package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"questbook/internal/cli"
	"questbook/internal/content"
	"questbook/internal/engine"
	"questbook/internal/logger"
	"questbook/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/questbook/questbook.db"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize questbook storage."`
	Register cli.RegisterCmd `cmd:"" help:"Create your account."`
	Onboard  cli.OnboardCmd  `cmd:"" help:"Answer the classification questions."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's quests." default:"1"`
	Complete cli.CompleteCmd `cmd:"" help:"Mark a quest or task complete."`
	Cancel   cli.CancelCmd   `cmd:"" help:"Cancel a quest or remove a task."`
	Undo     cli.UndoCmd     `cmd:"" help:"Undo a completion record."`
	Timer    cli.TimerCmd    `cmd:"" help:"Run a focus timer for a quest or task."`
	History  cli.HistoryCmd  `cmd:"" help:"Browse completion history."`
	Task     struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a personal task."`
		List   cli.TaskListCmd   `cmd:"" help:"List personal tasks."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a personal task."`
	} `cmd:"" help:"Manage personal tasks."`
	Theme     cli.ThemeCmd  `cmd:"" help:"Show or set the display theme."`
	Debugging cli.DebugCmd  `cmd:"" name:"debug" help:"Developer inspection commands."`
	Doctor    cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("questbook"),
		kong.Description("Daily quest tracker / habit companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging unavailable: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	library, err := content.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: embedded content unreadable: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: engine.New(store, library, engine.WithLogger(logger.Get())),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
