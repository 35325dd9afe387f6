package examples

import (
	"fmt"
	"sort"
	"strings"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

// Template is a ready made form a project can start from
type Template struct {
	Name        string
	Description string
	fields      []models.Field
}

// Fields returns fresh copies of the template fields, each with a new id
func (t Template) Fields() []models.Field {
	out := make([]models.Field, len(t.fields))
	for i, f := range t.fields {
		fresh := models.NewField(f.Type)
		f = f.Clone()
		f.ID = fresh.ID
		out[i] = f
	}
	return out
}

// Len returns the number of fields in the template
func (t Template) Len() int {
	return len(t.fields)
}

var templates = map[string]Template{
	"contact": {
		Name:        "contact",
		Description: "Contact form with name, email, topic and message",
		fields: []models.Field{
			text("Full name", "Jane Doe", true),
			text("Email", "jane@example.com", true),
			dropdown("Topic", false, "General question", "Support", "Sales"),
			text("Message", "How can we help?", true),
		},
	},
	"signup": {
		Name:        "signup",
		Description: "Account sign-up with username, age and plan",
		fields: []models.Field{
			text("Username", "janedoe", true),
			text("Email", "jane@example.com", true),
			number("Age", 13, 120, true),
			dropdown("Plan", true, "Free", "Pro", "Team"),
		},
	},
	"survey": {
		Name:        "survey",
		Description: "Short satisfaction survey",
		fields: []models.Field{
			dropdown("How did you hear about us?", false, "Search engine", "Friend", "Social media", "Other"),
			number("How likely are you to recommend us? (0-10)", 0, 10, true),
			dropdown("Overall satisfaction", true, "Very satisfied", "Satisfied", "Neutral", "Unsatisfied"),
			text("Anything else?", "", false),
		},
	},
}

// Names returns the template names in alphabetical order
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every template, sorted by name
func All() []Template {
	out := make([]Template, 0, len(templates))
	for _, name := range Names() {
		out = append(out, templates[name])
	}
	return out
}

// Get looks a template up by name, ignoring case
func Get(name string) (Template, error) {
	t, ok := templates[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q. Available: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

func text(label, placeholder string, required bool) models.Field {
	f := models.NewFieldWithID("", models.FieldTypeText)
	f.Label = label
	f.Placeholder = placeholder
	f.Validation.Required = required
	return f
}

func number(label string, min, max float64, required bool) models.Field {
	f := models.NewFieldWithID("", models.FieldTypeNumber)
	f.Label = label
	f.Validation = models.Validation{Required: required, Min: models.Float(min), Max: models.Float(max)}
	return f
}

func dropdown(label string, required bool, options ...string) models.Field {
	f := models.NewFieldWithID("", models.FieldTypeDropdown)
	f.Label = label
	f.Options = options
	f.Validation.Required = required
	return f
}
