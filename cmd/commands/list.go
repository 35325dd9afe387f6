package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/formcraft/formcraft-cli/internal/cli"
	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/search"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Filter string     `json:"filter,omitempty" yaml:"filter,omitempty"`
	Where  string     `json:"where,omitempty" yaml:"where,omitempty"`
	Fields []ListItem `json:"fields" yaml:"fields"`
	Count  int        `json:"count" yaml:"count"`
}

// ListItem represents a single field in the list
type ListItem struct {
	Position int              `json:"position" yaml:"position"`
	ID       string           `json:"id" yaml:"id"`
	Type     models.FieldType `json:"type" yaml:"type"`
	Label    string           `json:"label" yaml:"label"`
	Rules    string           `json:"rules" yaml:"rules"`
}

var (
	listFilter string
	listWhere  string
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the fields of the saved form",
		Long: `List every field of the saved form in order.

Examples:
  # List all fields
  formcraft list

  # Fuzzy filter on labels
  formcraft list --filter mail

  # Required number fields
  formcraft list --where "type:number AND required:true"

  # Everything except text fields
  formcraft list -w "NOT type:text"

  # JSON output
  formcraft list -o json`,
		Args:    cobra.NoArgs,
		PreRunE: validateProject,
		RunE:    runList,
	}

	cmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Fuzzy filter on field labels")
	cmd.Flags().StringVarP(&listWhere, "where", "w", "", "Attribute query (type:, label:, placeholder:, required:, option:, id:)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	return withStore(cmd, func(_ *cli.CommandContext, s *store.Store) error {
		fields := s.Fields()
		candidates, err := search.Filter(fields, listWhere)
		if err != nil {
			return err
		}

		result := ListResult{Filter: listFilter, Where: listWhere, Fields: filterFields(fields, candidates, listFilter)}
		result.Count = len(result.Fields)

		if format != string(cli.FormatText) {
			return cli.OutputResults(cmd.OutOrStdout(), format, result)
		}

		if result.Count == 0 {
			if listFilter != "" || listWhere != "" {
				cli.PrintInfo("No fields match %q", strings.TrimSpace(listWhere+" "+listFilter))
			} else {
				cli.PrintInfo("The form has no fields yet. Add one with 'formcraft add text'")
			}
			return nil
		}

		table := cli.NewTableFormatter(cmd.OutOrStdout())
		table.Header("#", "ID", "TYPE", "LABEL", "RULES")
		for _, item := range result.Fields {
			table.Row(
				strconv.Itoa(item.Position),
				cli.ShortID(item.ID),
				string(item.Type),
				cli.TruncateString(item.Label, 32),
				item.Rules,
			)
		}
		table.Flush()
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d field(s)\n", result.Count)
		return nil
	})
}

// filterFields narrows candidates (positions into fields). It keeps form
// order when no filter is given and best match order otherwise.
func filterFields(fields []models.Field, candidates []int, filter string) []ListItem {
	toItem := func(i int) ListItem {
		f := fields[i]
		return ListItem{Position: i + 1, ID: f.ID, Type: f.Type, Label: f.Label, Rules: cli.DescribeRules(f)}
	}

	items := []ListItem{}
	if filter == "" {
		for _, i := range candidates {
			items = append(items, toItem(i))
		}
		return items
	}

	labels := make([]string, len(candidates))
	for n, i := range candidates {
		labels[n] = fields[i].Label
	}
	for _, match := range fuzzy.Find(filter, labels) {
		items = append(items, toItem(candidates[match.Index]))
	}
	return items
}
