// Package fill walks a form definition interactively, prompting for each
// field and checking answers with the same rules as the live preview.
package fill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/preview"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// NoneOption is offered first for dropdowns that are not required
const NoneOption = "(none)"

// Answer is the value collected for one field
type Answer struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Run prompts for every field in order and returns the answers. Input
// prompts reject invalid answers in place; a driver that returns one anyway
// causes ErrIncomplete.
func Run(ctx context.Context, driver PromptDriver, fields []models.Field) ([]Answer, error) {
	engine := preview.NewEngine()
	engine.Sync(store.State{Fields: fields})

	answers := make([]Answer, 0, len(fields))
	for _, f := range fields {
		value, err := ask(ctx, driver, f)
		if err != nil {
			return nil, err
		}
		engine.HandleChange(f.ID, value)
		answers = append(answers, Answer{ID: f.ID, Label: f.Label, Value: value})
	}

	if err := engine.Submit(); err != nil {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			if msg := engine.Error(f.ID); msg != "" {
				msgs = append(msgs, fmt.Sprintf("%s: %s", displayLabel(f), msg))
			}
		}
		return answers, fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(msgs, "; "))
	}

	return answers, nil
}

func ask(ctx context.Context, driver PromptDriver, f models.Field) (string, error) {
	if f.IsDropdown() {
		return askSelect(ctx, driver, f)
	}

	return driver.Input(ctx, InputConfig{
		Message: promptMessage(f),
		Help:    helpText(f),
		Validator: func(s string) error {
			if msg := preview.Validate(f, s); msg != "" {
				return errors.New(msg)
			}
			return nil
		},
	})
}

func askSelect(ctx context.Context, driver PromptDriver, f models.Field) (string, error) {
	options := append([]string{}, f.Options...)
	withNone := !f.Validation.Required
	if withNone {
		options = append([]string{NoneOption}, options...)
	}
	if len(options) == 0 {
		if err := driver.Info(ctx, fmt.Sprintf("%s has no options, skipping", displayLabel(f))); err != nil {
			return "", err
		}
		return "", nil
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message: promptMessage(f),
		Options: options,
		Help:    helpText(f),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) || withNone && idx == 0 {
		return "", nil
	}
	return options[idx], nil
}

func promptMessage(f models.Field) string {
	msg := displayLabel(f)
	if f.Validation.Required {
		msg += " *"
	}
	return msg
}

func helpText(f models.Field) string {
	var parts []string
	if f.Placeholder != "" {
		parts = append(parts, f.Placeholder)
	}
	if f.Type == models.FieldTypeNumber {
		if f.Validation.Min != nil {
			parts = append(parts, "min "+preview.FormatNumber(*f.Validation.Min))
		}
		if f.Validation.Max != nil {
			parts = append(parts, "max "+preview.FormatNumber(*f.Validation.Max))
		}
	}
	return strings.Join(parts, ", ")
}

func displayLabel(f models.Field) string {
	if f.Label == "" {
		return "(no label)"
	}
	return f.Label
}
