package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tasklist-go/app/tui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the task list in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, taskService, loader, err := opts.setup()
			if err != nil {
				return err
			}

			// The UI owns the terminal, so log output goes to a file.
			f, err := tea.LogToFile(cfg.LogFile, "tasklist")
			if err != nil {
				return err
			}
			defer f.Close()

			return tui.Run(cmd.Context(), taskService, loader)
		},
	}
}
