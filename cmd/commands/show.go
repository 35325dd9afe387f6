package commands

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/composer"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

var (
	showRender bool
	showWidth  int
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id|position>",
		Short: "Show one field's definition",
		Long: `Show a single field as markdown, or as JSON/YAML with -o.

Examples:
  # Show the second field
  formcraft show 2

  # Render it for the terminal
  formcraft show 2 --render`,
		Args:    cobra.ExactArgs(1),
		PreRunE: validateProject,
		RunE:    runShow,
	}

	cmd.Flags().BoolVar(&showRender, "render", false, "Render markdown for the terminal")
	cmd.Flags().IntVar(&showWidth, "width", 80, "Word wrap width for --render")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	return withStore(cmd, func(_ *cli.CommandContext, s *store.Store) error {
		field, err := cli.ResolveField(s, args[0])
		if err != nil {
			return err
		}

		if format != string(cli.FormatText) {
			return cli.OutputResults(cmd.OutOrStdout(), format, field)
		}

		content := composer.ComposeField(s.IndexOf(field.ID)+1, field)
		if showRender {
			content, err = renderMarkdown(content, showWidth)
			if err != nil {
				return err
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	})
}

// renderMarkdown styles markdown for the terminal
func renderMarkdown(content string, width int) (string, error) {
	style := glamour.WithAutoStyle()
	if cli.NoColor() {
		style = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
