package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasklist-go/app/models"
	"tasklist-go/app/views"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		filter     string
		user       int
		sortByUser bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the visible tasks",
		Long:  `Load tasks and users once, apply the filter, user and sort options, and print the result.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := models.ParseFilter(filter)
			if err != nil {
				return err
			}

			_, taskService, loader, err := opts.setup()
			if err != nil {
				return err
			}
			loader.Load(cmd.Context(), taskService)

			taskService.SetFilter(f)
			if cmd.Flags().Changed("user") {
				taskService.SelectUser(user)
			}
			if sortByUser {
				taskService.ToggleSort()
			}

			page := views.Build(taskService.Snapshot())
			out := cmd.OutOrStdout()
			if len(page.Tasks) == 0 {
				fmt.Fprintln(out, "No tasks found.")
				return nil
			}
			for _, item := range page.Tasks {
				check := "[ ]"
				if item.Completed {
					check = "[x]"
				}
				fmt.Fprintf(out, "%s %s (User: %s)\n", check, item.Name, item.UserLabel)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", models.FilterAll.String(), "status filter: All, Active or Completed")
	cmd.Flags().IntVar(&user, "user", 0, "only show tasks of this user id")
	cmd.Flags().BoolVar(&sortByUser, "sort", false, "sort by user id")
	return cmd
}
