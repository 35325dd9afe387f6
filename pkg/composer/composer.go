package composer

import (
	"fmt"
	"strings"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/preview"
)

// DefaultTitle is used when the caller passes an empty title
const DefaultTitle = "Form"

// ComposeForm renders a markdown description of the form, one section per
// field in collection order.
func ComposeForm(title string, fields []models.Field) (string, error) {
	if len(fields) == 0 {
		return "", fmt.Errorf("form has no fields")
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("# %s\n\n", title))
	output.WriteString(fmt.Sprintf("%d %s\n\n", len(fields), pluralize("field", len(fields))))

	for i, field := range fields {
		output.WriteString(ComposeField(i+1, field))
		if i < len(fields)-1 {
			output.WriteString("\n---\n\n")
		}
	}

	return output.String(), nil
}

// ComposeField renders a single field section. position is 1-based.
func ComposeField(position int, field models.Field) string {
	var output strings.Builder

	label := field.Label
	if strings.TrimSpace(label) == "" {
		label = "(no label)"
	}
	output.WriteString(fmt.Sprintf("## %d. %s\n\n", position, label))
	output.WriteString(fmt.Sprintf("<!-- %s -->\n", field.ID))
	output.WriteString(fmt.Sprintf("- **Type:** %s\n", field.Type.Title()))
	output.WriteString(fmt.Sprintf("- **Required:** %s\n", yesNo(field.Validation.Required)))

	if field.Placeholder != "" {
		output.WriteString(fmt.Sprintf("- **Placeholder:** %s\n", field.Placeholder))
	}

	if field.Type == models.FieldTypeNumber {
		if field.Validation.Min != nil {
			output.WriteString(fmt.Sprintf("- **Min:** %s\n", preview.FormatNumber(*field.Validation.Min)))
		}
		if field.Validation.Max != nil {
			output.WriteString(fmt.Sprintf("- **Max:** %s\n", preview.FormatNumber(*field.Validation.Max)))
		}
	}

	if field.IsDropdown() {
		if len(field.Options) == 0 {
			output.WriteString("- **Options:** none\n")
		} else {
			output.WriteString("- **Options:**\n")
			for _, opt := range field.Options {
				output.WriteString(fmt.Sprintf("  - %s\n", opt))
			}
		}
	}

	return output.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
