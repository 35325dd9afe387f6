package commands

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/composer"
	"github.com/formcraft/formcraft-cli/pkg/files"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

var (
	exportToFile    string
	exportClipboard bool
	exportTitle     string
)

// clipboardWrite is swapped in tests
var clipboardWrite = clipboard.WriteAll

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the form as markdown, JSON or YAML",
		Long: `Export the saved form. Text output is a markdown description of every
field; -o json and -o yaml print the snapshot records.

By default the result is written to stdout. Use --file to write it to a
file or --clipboard to copy it.

Examples:
  # Markdown to stdout
  formcraft export

  # Markdown to FORM.md
  formcraft export --file FORM.md

  # Snapshot JSON to the clipboard
  formcraft export -o json --clipboard`,
		Args:    cobra.NoArgs,
		PreRunE: validateProject,
		RunE:    runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout")
	cmd.Flags().BoolVarP(&exportClipboard, "clipboard", "c", false, "Copy the export to the clipboard")
	cmd.Flags().StringVar(&exportTitle, "title", "", "Document title (default: ui.title setting)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	return withStore(cmd, func(ctx *cli.CommandContext, s *store.Store) error {
		var content string
		if format == string(cli.FormatText) {
			title := exportTitle
			if title == "" {
				title = ctx.LoadSettingsWithDefault().UI.Title
			}
			content, err = composer.ComposeForm(title, s.Fields())
			if err != nil {
				return fmt.Errorf("failed to compose form: %w", err)
			}
		} else {
			var buf bytes.Buffer
			if err := cli.OutputResults(&buf, format, s.Fields()); err != nil {
				return err
			}
			content = buf.String()
		}

		if exportClipboard {
			if err := clipboardWrite(content); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			cli.PrintSuccess("Copied %d field(s) to clipboard", s.Len())
		}

		if exportToFile != "" {
			if err := files.WriteFile(exportToFile, content); err != nil {
				return err
			}
			cli.PrintSuccess("Exported %d field(s) to %s", s.Len(), exportToFile)
		}

		if !exportClipboard && exportToFile == "" {
			fmt.Fprint(cmd.OutOrStdout(), content)
		}
		return nil
	})
}
