package cli

import (
	"fmt"
	"sort"
	"time"

	"questbook/internal/engine"
)

type HistoryCmd struct {
	List  HistoryListCmd  `cmd:"" help:"List completion records." default:"1"`
	Stats HistoryStatsCmd `cmd:"" help:"Per-category totals."`
	Edit  HistoryEditCmd  `cmd:"" help:"Correct a record's duration."`
}

type HistoryListCmd struct {
	Category string `short:"c" help:"Filter by category."`
	Limit    int    `short:"n" help:"Max records to show." default:"20"`
}

func (c *HistoryListCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	records := ctx.Engine.Records(profile.Token)
	if c.Category != "" {
		filter := engine.NormalizeCategory(c.Category)
		filtered := records[:0]
		for _, r := range records {
			if r.Category == filter {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	// Newest first for display; the ledger itself keeps insertion order.
	sort.Slice(records, func(i, j int) bool {
		return records[i].CompletedAt > records[j].CompletedAt
	})

	if len(records) == 0 {
		fmt.Println("No completed tasks yet.")
		return nil
	}

	shown := 0
	for _, r := range records {
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		kind := "task"
		if r.IsDaily == 1 {
			kind = "quest"
		}
		when := time.UnixMilli(r.CompletedAt).Format("Jan 2 15:04")
		fmt.Printf("#%-4d day %-3d %-7s %-30s %-12s %3d min  %s\n",
			r.ID, r.Day, kind, r.TaskName, r.Category, r.Duration, when)
		shown++
	}
	return nil
}

type HistoryStatsCmd struct{}

func (c *HistoryStatsCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	records := ctx.Engine.Records(profile.Token)
	if len(records) == 0 {
		fmt.Println("No completed tasks yet.")
		return nil
	}

	type bucket struct {
		count   int
		minutes int
	}
	byCategory := make(map[string]*bucket)
	for _, r := range records {
		b := byCategory[r.Category]
		if b == nil {
			b = &bucket{}
			byCategory[r.Category] = b
		}
		b.count++
		b.minutes += r.Duration
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	fmt.Printf("%-14s %6s %8s\n", "category", "tasks", "minutes")
	for _, c := range categories {
		b := byCategory[c]
		fmt.Printf("%-14s %6d %8d\n", c, b.count, b.minutes)
	}
	return nil
}

type HistoryEditCmd struct {
	Record   int `arg:"" help:"Completion record id."`
	Duration int `short:"d" help:"Corrected duration in minutes." required:""`
}

func (c *HistoryEditCmd) Run(ctx *Context) error {
	profile, err := ctx.loadUser()
	if err != nil {
		return err
	}

	if err := ctx.Engine.UpdateRecordDuration(profile.Token, c.Record, c.Duration); err != nil {
		return err
	}

	fmt.Printf("Record #%d duration set to %d min.\n", c.Record, c.Duration)
	return nil
}
