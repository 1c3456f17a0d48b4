package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/bugbee/internal/bugbee"
	"github.com/colonyops/bugbee/internal/core/workitem"
	"github.com/colonyops/bugbee/pkg/iojson"
)

type ItemCmd struct {
	flags *Flags
	app   *bugbee.App

	// flags
	jsonOutput bool
	status     string
	assignee   string
	projectID  string
	kind       string

	importReader iojson.FileReader[[]workitem.WorkItem]
}

// NewItemCmd creates a new item command
func NewItemCmd(flags *Flags, app *bugbee.App) *ItemCmd {
	return &ItemCmd{flags: flags, app: app}
}

// Register adds the item command and its subcommands to the application
func (cmd *ItemCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "item",
		Usage:     "Manage work items",
		UsageText: "bugbee item <ls|add|done|assign|rm> [options]",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List work items",
				UsageText: "bugbee item ls [--status S] [--assignee M] [--project P] [--kind K] [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
					&cli.StringFlag{
						Name:        "status",
						Usage:       "filter by status",
						Destination: &cmd.status,
					},
					&cli.StringFlag{
						Name:        "assignee",
						Usage:       "filter by assigned member ID",
						Destination: &cmd.assignee,
					},
					&cli.StringFlag{
						Name:        "project",
						Usage:       "filter by project ID",
						Destination: &cmd.projectID,
					},
					&cli.StringFlag{
						Name:        "kind",
						Usage:       "filter by kind",
						Destination: &cmd.kind,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "add",
				Usage:     "Add a work item from a line of text",
				UsageText: `bugbee item add "Fix login crash by friday"`,
				Description: `A trailing date phrase like "by tomorrow", "due friday", or
"in 2 weeks" becomes the item's due date.`,
				Action: cmd.runAdd,
			},
			{
				Name:      "import",
				Usage:     "Import work items from a JSON array",
				UsageText: "bugbee item import [-f FILE]",
				Description: `Reads a JSON array of work items from the given file, or from
stdin when piped. Each entry goes through the same validation and
automation rules as items created over the API.`,
				Flags: []cli.Flag{
					cmd.importReader.Flag(),
				},
				Action: cmd.runImport,
			},
			{
				Name:      "done",
				Usage:     "Mark an item as done",
				UsageText: "bugbee item done <id>",
				Action:    cmd.runDone,
			},
			{
				Name:      "assign",
				Usage:     "Assign an item to a member",
				UsageText: "bugbee item assign <id> <member-id>",
				Action:    cmd.runAssign,
			},
			{
				Name:      "rm",
				Usage:     "Delete an item",
				UsageText: "bugbee item rm <id>",
				Action:    cmd.runRm,
			},
		},
	})

	return app
}

func (cmd *ItemCmd) runLs(ctx context.Context, c *cli.Command) error {
	items, err := cmd.app.Items.List(ctx, workitem.ListFilter{
		Status:     workitem.Status(cmd.status),
		AssignedTo: cmd.assignee,
		ProjectID:  cmd.projectID,
		Kind:       workitem.Kind(cmd.kind),
	})
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	if len(items) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No items found\n")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, item := range items {
			if err := iojson.WriteLine(out, item); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tKIND\tSTATUS\tPRI\tDUE\tASSIGNEE\tTITLE")
	for _, item := range items {
		due := string(item.DueDate)
		if due == "" {
			due = "-"
		}
		assignee := item.AssignedTo
		if assignee == "" {
			assignee = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Kind, item.Status, item.Priority, due, assignee, item.Title)
	}
	_ = w.Flush()

	return nil
}

func (cmd *ItemCmd) runAdd(ctx context.Context, c *cli.Command) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("usage: bugbee item add <text>")
	}

	item, err := cmd.app.Items.QuickAdd(ctx, text, "")
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	if item.DueDate.IsZero() {
		fmt.Fprintf(c.Root().Writer, "created %s: %s\n", item.ID, item.Title)
	} else {
		fmt.Fprintf(c.Root().Writer, "created %s: %s (due %s)\n", item.ID, item.Title, item.DueDate)
	}

	return nil
}

func (cmd *ItemCmd) runImport(ctx context.Context, c *cli.Command) error {
	items, err := cmd.importReader.Read()
	if err != nil {
		return err
	}

	for i, item := range items {
		created, err := cmd.app.Items.Create(ctx, item, "")
		if err != nil {
			return fmt.Errorf("import item %d (%q): %w", i, item.Title, err)
		}
		fmt.Fprintf(c.Root().Writer, "created %s: %s\n", created.ID, created.Title)
	}

	fmt.Fprintf(c.Root().Writer, "imported %d items\n", len(items))

	return nil
}

func (cmd *ItemCmd) runDone(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("usage: bugbee item done <id>")
	}

	done := workitem.StatusDone
	item, err := cmd.app.Items.Update(ctx, id, workitem.Patch{Status: &done}, "")
	if err != nil {
		return fmt.Errorf("complete item: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "done %s: %s\n", item.ID, item.Title)

	return nil
}

func (cmd *ItemCmd) runAssign(ctx context.Context, c *cli.Command) error {
	id, memberID := c.Args().Get(0), c.Args().Get(1)
	if id == "" || memberID == "" {
		return fmt.Errorf("usage: bugbee item assign <id> <member-id>")
	}

	item, err := cmd.app.Items.Update(ctx, id, workitem.Patch{AssignedTo: &memberID}, memberID)
	if err != nil {
		return fmt.Errorf("assign item: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "assigned %s to %s (status %s)\n", item.ID, memberID, item.Status)

	return nil
}

func (cmd *ItemCmd) runRm(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("usage: bugbee item rm <id>")
	}

	if err := cmd.app.Items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "deleted %s\n", id)

	return nil
}
