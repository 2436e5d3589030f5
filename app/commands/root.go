// Package commands wires the task list surfaces into a cobra CLI.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tasklist-go/app/config"
	"tasklist-go/app/services"
)

type rootOptions struct {
	configPath string
}

// NewRootCmd builds the tasklist command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tasklist",
		Short: "A task list backed by a remote todo collection",
		Long: `tasklist fetches tasks and users from a remote collection and lets you
filter, sort, add, edit and delete them in a web page or a terminal UI.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./"+config.DefaultConfigFile+" when present)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newTUICmd(opts))
	cmd.AddCommand(newListCmd(opts))
	return cmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads the configuration and creates an empty store with its loader.
func (o *rootOptions) setup() (*config.Config, *services.TaskService, *services.Loader, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	loader := services.NewLoader(nil, cfg.TasksURL, cfg.UsersURL, cfg.RequestTimeout)
	return cfg, services.NewTaskService(), loader, nil
}
