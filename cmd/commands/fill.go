package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/fill"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// newPromptDriver is swapped in tests
var newPromptDriver = fill.NewSurveyDriver

// NewFillCommand creates the fill command
func NewFillCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in the form interactively",
		Long: `Prompt for every field of the saved form, checking each answer with
the same rules as the builder's preview, then print the answers.

Nothing is written back to the form definition.

Examples:
  formcraft fill
  formcraft fill -o json`,
		Args:    cobra.NoArgs,
		PreRunE: validateProject,
		RunE:    runFill,
	}

	return cmd
}

func runFill(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	return withStore(cmd, func(_ *cli.CommandContext, s *store.Store) error {
		if s.Len() == 0 {
			return fmt.Errorf("the form has no fields to fill")
		}

		answers, err := fill.Run(cmd.Context(), newPromptDriver(), s.Fields())
		if errors.Is(err, fill.ErrAborted) {
			cli.PrintWarning("Aborted")
			return nil
		}
		if err != nil {
			return err
		}

		if format != string(cli.FormatText) {
			return cli.OutputResults(cmd.OutOrStdout(), format, answers)
		}

		table := cli.NewTableFormatter(cmd.OutOrStdout())
		table.Header("FIELD", "VALUE")
		for _, a := range answers {
			value := a.Value
			if value == "" {
				value = "-"
			}
			table.Row(a.Label, value)
		}
		table.Flush()
		cli.PrintSuccess("Form submitted")
		return nil
	})
}
