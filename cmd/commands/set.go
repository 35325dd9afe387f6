package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

var (
	setLabel       string
	setPlaceholder string
	setRequired    bool
	setMin         float64
	setMax         float64
	setClearMin    bool
	setClearMax    bool
	setOptions     string
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <id|position>",
		Short: "Change a field's label, placeholder or validation",
		Long: `Update the properties of an existing field. Only the flags you pass
are changed; the field type can not be changed.

Examples:
  # Rename the first field
  formcraft set 1 --label "Full name"

  # Make a number field required with new bounds
  formcraft set 2 --required --min 18 --max 120

  # Drop the upper bound
  formcraft set 2 --clear-max

  # Replace dropdown options
  formcraft set 3 --options Small,Medium,Large`,
		Args:    cobra.ExactArgs(1),
		PreRunE: validateProject,
		RunE:    runSet,
	}

	cmd.Flags().StringVarP(&setLabel, "label", "l", "", "New label")
	cmd.Flags().StringVarP(&setPlaceholder, "placeholder", "p", "", "New placeholder")
	cmd.Flags().BoolVarP(&setRequired, "required", "r", false, "Whether the field is required (--required=false to clear)")
	cmd.Flags().Float64Var(&setMin, "min", 0, "Minimum value (number fields)")
	cmd.Flags().Float64Var(&setMax, "max", 0, "Maximum value (number fields)")
	cmd.Flags().BoolVar(&setClearMin, "clear-min", false, "Remove the minimum")
	cmd.Flags().BoolVar(&setClearMax, "clear-max", false, "Remove the maximum")
	cmd.Flags().StringVar(&setOptions, "options", "", "Comma separated dropdown options")

	cmd.MarkFlagsMutuallyExclusive("min", "clear-min")
	cmd.MarkFlagsMutuallyExclusive("max", "clear-max")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx *cli.CommandContext, s *store.Store) error {
		field, err := cli.ResolveField(s, args[0])
		if err != nil {
			return err
		}

		patch, err := buildSetPatch(cmd, field)
		if err != nil {
			return err
		}
		if patch.Empty() {
			return fmt.Errorf("nothing to change: pass at least one of --label, --placeholder, --required, --min, --max, --options")
		}

		s.UpdateField(field.ID, patch)
		if err := ctx.Save(); err != nil {
			return err
		}

		updated, _ := s.Field(field.ID)
		cli.PrintSuccess("Updated field %q (%s)", updated.Label, cli.DescribeRules(updated))
		return nil
	})
}

func buildSetPatch(cmd *cobra.Command, field models.Field) (models.FieldPatch, error) {
	flags := cmd.Flags()
	var patch models.FieldPatch

	if flags.Changed("label") {
		patch.Label = &setLabel
	}
	if flags.Changed("placeholder") {
		patch.Placeholder = &setPlaceholder
	}

	boundsChanged := flags.Changed("min") || flags.Changed("max") || setClearMin || setClearMax
	if boundsChanged && field.Type != models.FieldTypeNumber {
		return patch, fmt.Errorf("--min and --max only apply to number fields")
	}
	if flags.Changed("options") && !field.IsDropdown() {
		return patch, fmt.Errorf("--options only applies to dropdown fields")
	}

	if flags.Changed("required") || boundsChanged {
		v := field.Validation.Clone()
		if flags.Changed("required") {
			v = v.WithRequired(setRequired)
		}
		if flags.Changed("min") {
			v = v.WithMin(models.Float(setMin))
		}
		if setClearMin {
			v = v.WithMin(nil)
		}
		if flags.Changed("max") {
			v = v.WithMax(models.Float(setMax))
		}
		if setClearMax {
			v = v.WithMax(nil)
		}
		patch.Validation = &v
	}

	if flags.Changed("options") {
		opts := cli.ParseOptions(setOptions)
		patch.Options = &opts
	}

	return patch, nil
}
