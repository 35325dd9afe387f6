package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/cmd/commands"
	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/internal/logging"
	"github.com/formcraft/formcraft-cli/pkg/files"
	"github.com/formcraft/formcraft-cli/pkg/store"
	"github.com/formcraft/formcraft-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var resume bool

var rootCmd = &cobra.Command{
	Use:   "formcraft",
	Short: "Terminal form builder with a live validating preview",
	Long: `Formcraft builds simple forms out of text, number and dropdown fields.
The TUI shows the field list, the selected field's settings and a live
preview that validates as you type. The form is saved as a JSON snapshot
under .formcraft/.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		noColor, _ := cmd.Flags().GetBool("no-color")
		yes, _ := cmd.Flags().GetBool("yes")
		cli.SetGlobalFlags(quiet, noColor, yes)
	},
	RunE: runBuilder,
}

func runBuilder(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	ctx.Ephemeral, _ = cmd.Flags().GetBool("ephemeral")
	ctx.LogLevel, _ = cmd.Flags().GetString("log-level")
	defer ctx.Close()

	if err := ctx.ValidateProject(); err != nil {
		return err
	}

	// The builder starts empty; --resume picks up the saved form
	s, err := ctx.NewStore()
	if err != nil {
		return err
	}
	if resume {
		if err := s.LoadSnapshot(); err != nil && !errors.Is(err, store.ErrSnapshotNotFound) {
			return err
		}
	}

	settings := ctx.LoadSettingsWithDefault()
	app := tui.NewApp(s, settings)
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if settings.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logging.Info("starting builder")
	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Formcraft project",
	Long:  `Creates the .formcraft folder structure and default settings in the current directory`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintInfo("Initializing Formcraft project in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		cli.PrintSuccess("Created %s folder structure", files.FormcraftDir)
		cli.PrintInfo("Run 'formcraft' to start the form builder.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Formcraft",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Formcraft version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable symbols and colour in messages")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to confirmations")
	rootCmd.PersistentFlags().String("log-level", "", "Override the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep the form in memory only; nothing is read or written")

	rootCmd.Flags().BoolVar(&resume, "resume", false, "Load the saved form when the builder starts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewRemoveCommand())
	rootCmd.AddCommand(commands.NewMoveCommand())
	rootCmd.AddCommand(commands.NewFillCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewSchemaCommand())
	rootCmd.AddCommand(commands.NewExamplesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
