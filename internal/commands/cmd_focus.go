package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bugbee/internal/bugbee"
	"github.com/colonyops/bugbee/internal/core/workitem"
	"github.com/colonyops/bugbee/pkg/iojson"
)

var (
	focusHeaderStyle = lipgloss.NewStyle().Bold(true)
	focusCountStyle  = lipgloss.NewStyle().Faint(true)
	focusIDStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusDueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	bucketColors = map[string]lipgloss.Color{
		"Overdue":       lipgloss.Color("1"),
		"Due Today":     lipgloss.Color("3"),
		"Due This Week": lipgloss.Color("6"),
		"High Priority": lipgloss.Color("5"),
		"In Progress":   lipgloss.Color("4"),
		"Other":         lipgloss.Color("7"),
		"Recently Done": lipgloss.Color("2"),
	}
)

type FocusCmd struct {
	flags *Flags
	app   *bugbee.App

	// flags
	jsonOutput bool
}

// NewFocusCmd creates a new focus command
func NewFocusCmd(flags *Flags, app *bugbee.App) *FocusCmd {
	return &FocusCmd{flags: flags, app: app}
}

// Register adds the focus command to the application
func (cmd *FocusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "focus",
		Usage:     "Show a member's focus board",
		UsageText: "bugbee focus <member-id> [--json]",
		Description: `Buckets the member's open items by urgency: overdue first, then due
today, due this week, high priority, in progress, and the rest, plus
anything completed in the last day.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output buckets as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FocusCmd) run(ctx context.Context, c *cli.Command) error {
	memberID := c.Args().First()
	if memberID == "" {
		return fmt.Errorf("usage: bugbee focus <member-id>")
	}

	buckets, err := cmd.app.Focus.ForMember(ctx, memberID)
	if err != nil {
		return fmt.Errorf("build focus board: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, out, buckets)
	}

	sections := []struct {
		name  string
		items []workitem.WorkItem
	}{
		{"Overdue", buckets.Overdue},
		{"Due Today", buckets.DueToday},
		{"Due This Week", buckets.DueThisWeek},
		{"High Priority", buckets.HighPriority},
		{"In Progress", buckets.InProgress},
		{"Other", buckets.Other},
		{"Recently Done", buckets.RecentlyDone},
	}

	var b strings.Builder
	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}

		header := focusHeaderStyle.Foreground(bucketColors[section.name]).Render(section.name)
		count := focusCountStyle.Render(fmt.Sprintf("(%d)", len(section.items)))
		b.WriteString(header + " " + count + "\n")

		for _, item := range section.items {
			line := "  " + focusIDStyle.Render(item.ID) + "  " + item.Title
			if !item.DueDate.IsZero() {
				line += "  " + focusDueStyle.Render("due "+string(item.DueDate))
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		fmt.Fprintln(out, "Nothing on the board")
		return nil
	}

	fmt.Fprint(out, b.String())
	return nil
}
