package commands

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

// NewSchemaCommand creates the schema command
func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the saved form format",
		Long: `Print a JSON Schema describing the snapshot records written by save and
export -o json.

Examples:
  formcraft schema > form.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := json.MarshalIndent(SnapshotSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	return cmd
}

// SnapshotSchema reflects the snapshot format: an array of field records
func SnapshotSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect([]models.Field{})
	s.Title = "formcraft snapshot"
	s.Description = "Ordered list of form field definitions"

	if s.Items != nil && s.Items.Properties != nil {
		if typ, ok := s.Items.Properties.Get("type"); ok {
			for _, t := range models.FieldTypes {
				typ.Enum = append(typ.Enum, string(t))
			}
		}
	}
	return s
}
