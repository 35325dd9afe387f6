package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

var (
	addLabel       string
	addPlaceholder string
	addRequired    bool
	addOptions     string
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text|number|dropdown>",
		Short: "Append a new field to the form",
		Long: `Append a field of the given type to the end of the saved form.

New fields get the defaults the builder uses: a "New <Type> Field" label,
bounds 0 to 100 for numbers and three options for dropdowns.

Examples:
  # Add a text field
  formcraft add text

  # Add a required number field with a label
  formcraft add number --label Age --required

  # Add a dropdown with its own options
  formcraft add dropdown --label Color --options Red,Green,Blue`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"text", "number", "dropdown"},
		PreRunE:   validateProject,
		RunE:      runAdd,
	}

	cmd.Flags().StringVarP(&addLabel, "label", "l", "", "Field label")
	cmd.Flags().StringVarP(&addPlaceholder, "placeholder", "p", "", "Placeholder text")
	cmd.Flags().BoolVarP(&addRequired, "required", "r", false, "Mark the field as required")
	cmd.Flags().StringVar(&addOptions, "options", "", "Comma separated dropdown options")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	fieldType, err := cli.ValidateFieldType(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("options") && fieldType != models.FieldTypeDropdown {
		return fmt.Errorf("--options only applies to dropdown fields")
	}

	return withStore(cmd, func(ctx *cli.CommandContext, s *store.Store) error {
		field := s.AddField(fieldType)

		var patch models.FieldPatch
		if cmd.Flags().Changed("label") {
			patch.Label = &addLabel
		}
		if cmd.Flags().Changed("placeholder") {
			patch.Placeholder = &addPlaceholder
		}
		if addRequired {
			v := field.Validation.WithRequired(true)
			patch.Validation = &v
		}
		if cmd.Flags().Changed("options") {
			opts := cli.ParseOptions(addOptions)
			patch.Options = &opts
		}
		s.UpdateField(field.ID, patch)

		if err := ctx.Save(); err != nil {
			return err
		}

		field, _ = s.Field(field.ID)
		cli.PrintSuccess("Added %s field %q at position %d", field.Type, field.Label, s.IndexOf(field.ID)+1)
		cli.PrintInfo("ID: %s", field.ID)
		return nil
	})
}
