package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/examples"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// NewExamplesCommand creates the examples command
func NewExamplesCommand() *cobra.Command {
	var appendFields bool

	cmd := &cobra.Command{
		Use:   "examples [template]",
		Short: "List or install example forms",
		Long: `List the bundled example forms, or install one as the saved form.

Installing replaces the saved form and asks for confirmation when it
already has fields. Use --append to add the template fields after the
existing ones instead.`,
		Example: `  # List the available templates
  formcraft examples

  # Start from the contact form
  formcraft examples contact

  # Add the survey questions to the current form
  formcraft examples survey --append`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listTemplates(cmd)
			}
			tpl, err := examples.Get(args[0])
			if err != nil {
				return err
			}
			if err := validateProject(cmd, args); err != nil {
				return err
			}
			return installTemplate(cmd, tpl, appendFields)
		},
	}

	cmd.Flags().BoolVarP(&appendFields, "append", "a", false, "Append the template fields instead of replacing the form")

	return cmd
}

func listTemplates(cmd *cobra.Command) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	if format != string(cli.FormatText) {
		type item struct {
			Name        string `json:"name" yaml:"name"`
			Description string `json:"description" yaml:"description"`
			Fields      int    `json:"fields" yaml:"fields"`
		}
		items := []item{}
		for _, tpl := range examples.All() {
			items = append(items, item{Name: tpl.Name, Description: tpl.Description, Fields: tpl.Len()})
		}
		return cli.OutputResults(cmd.OutOrStdout(), format, items)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("NAME", "FIELDS", "DESCRIPTION")
	for _, tpl := range examples.All() {
		table.Row(tpl.Name, fmt.Sprint(tpl.Len()), tpl.Description)
	}
	table.Flush()
	fmt.Fprintln(cmd.OutOrStdout(), "\nInstall one with: formcraft examples <template>")
	return nil
}

func installTemplate(cmd *cobra.Command, tpl examples.Template, appendFields bool) error {
	return withStore(cmd, func(ctx *cli.CommandContext, s *store.Store) error {
		fields := tpl.Fields()

		if appendFields {
			fields = append(s.Fields(), fields...)
		} else if s.Len() > 0 {
			ok, err := cli.Confirm(fmt.Sprintf("Replace the %d field(s) of the saved form?", s.Len()), false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Cancelled")
				return nil
			}
		}

		s.Replace(fields)
		if err := ctx.Save(); err != nil {
			return err
		}

		cli.PrintSuccess("Installed %q template (%d field(s)), form now has %d", tpl.Name, tpl.Len(), s.Len())
		return nil
	})
}
