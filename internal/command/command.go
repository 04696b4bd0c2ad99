package command

import (
	"context"

	commandHandler "orgchart/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewHierarchyHandler)

type Command struct {
	hierarchyCommandHandler *commandHandler.HierarchyHandler
}

// NewCommand .
func NewCommand(
	hierarchyCommandHandler *commandHandler.HierarchyHandler,
) *Command {
	return &Command{
		hierarchyCommandHandler: hierarchyCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	run := func(fn func(*Command) func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()
			if cmd.Context() == nil {
				cmd.SetContext(context.Background())
			}
			return fn(command)(cmd, args)
		}
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "overwrite the hierarchy with the sample organisation",
			RunE: run(func(c *Command) func(*cobra.Command, []string) error {
				return c.hierarchyCommandHandler.Seed
			}),
		},
		&cobra.Command{
			Use:          "check",
			Short:        "validate the stored hierarchy and print an integrity report",
			SilenceUsage: true,
			RunE: run(func(c *Command) func(*cobra.Command, []string) error {
				return c.hierarchyCommandHandler.Check
			}),
		},
	)
}
