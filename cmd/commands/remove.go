package commands

import (
	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// NewRemoveCommand creates the remove command
func NewRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id|position>",
		Aliases: []string{"rm"},
		Short:   "Remove a field from the form",
		Long: `Remove a field from the saved form. Asks for confirmation unless -y
is given.

Examples:
  formcraft remove 2
  formcraft remove 2 -y`,
		Args:    cobra.ExactArgs(1),
		PreRunE: validateProject,
		RunE:    runRemove,
	}

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx *cli.CommandContext, s *store.Store) error {
		field, err := cli.ResolveField(s, args[0])
		if err != nil {
			return err
		}

		ok, err := cli.Confirm("Remove field \""+field.Label+"\"?", false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Cancelled")
			return nil
		}

		s.RemoveField(field.ID)
		if err := ctx.Save(); err != nil {
			return err
		}

		cli.PrintSuccess("Removed field %q, %d remaining", field.Label, s.Len())
		return nil
	})
}
