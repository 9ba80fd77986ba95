package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/tomate-timer/tomate/internal/domain"
)

// CommandsCmd lists the command surface
type CommandsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type commandEntry struct {
	ID       string `json:"id"`
	Shortcut string `json:"shortcut"`
	Title    string `json:"title"`
	UIOnly   bool   `json:"uiOnly"`
}

// Run executes the commands command
func (c *CommandsCmd) Run(cli *CLI) error {
	if c.Format == "json" {
		entries := make([]commandEntry, 0, len(domain.Commands))
		for _, cmd := range domain.Commands {
			entries = append(entries, commandEntry{
				ID:       string(cmd.ID),
				Shortcut: cmd.Shortcut,
				Title:    cmd.Title,
				UIOnly:   cmd.UIOnly,
			})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tShortcut\tTitle")
	fmt.Fprintln(w, "──\t────────\t─────")
	for _, cmd := range domain.Commands {
		title := cmd.Title
		if cmd.UIOnly {
			title += " (TUI only)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", cmd.ID, cmd.Shortcut, title)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Send one to a running daemon with 'tomate ctl <id>'.")
	return nil
}
