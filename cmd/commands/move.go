package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// NewMoveCommand creates the move command
func NewMoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a field to another position",
		Long: `Move the field at position <from> to position <to>. Positions start at
1; a <to> past the end moves the field last.

Examples:
  # Move the third field to the top
  formcraft move 3 1`,
		Args:    cobra.ExactArgs(2),
		PreRunE: validateProject,
		RunE:    runMove,
	}

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	from, err := cli.ParsePosition(args[0])
	if err != nil {
		return err
	}
	to, err := cli.ParsePosition(args[1])
	if err != nil {
		return err
	}

	return withStore(cmd, func(ctx *cli.CommandContext, s *store.Store) error {
		field, ok := s.At(from)
		if !ok {
			return fmt.Errorf("no field at position %d (form has %d)", from+1, s.Len())
		}

		if !s.ReorderFields(from, to) {
			cli.PrintInfo("Field %q is already at position %d", field.Label, from+1)
			return nil
		}
		if err := ctx.Save(); err != nil {
			return err
		}

		cli.PrintSuccess("Moved %q to position %d", field.Label, s.IndexOf(field.ID)+1)
		return nil
	})
}
