package commands

import (
	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// newCommandContext builds a context from the root persistent flags
func newCommandContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return nil, err
	}
	ctx.Ephemeral, _ = cmd.Flags().GetBool("ephemeral")
	ctx.LogLevel, _ = cmd.Flags().GetString("log-level")
	return ctx, nil
}

// validateProject is the PreRunE shared by every store command
func validateProject(cmd *cobra.Command, args []string) error {
	ctx, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	return ctx.ValidateProject()
}

// outputFormat returns the --output flag, defaulting to text
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = string(cli.FormatText)
	}
	if err := cli.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// withStore opens the saved form, runs fn against it and closes the
// backend. fn saves explicitly when it mutates.
func withStore(cmd *cobra.Command, fn func(ctx *cli.CommandContext, s *store.Store) error) error {
	ctx, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	return fn(ctx, s)
}
