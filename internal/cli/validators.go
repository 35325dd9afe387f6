package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateFieldType validates a field type argument
func ValidateFieldType(t string) (models.FieldType, error) {
	return models.ParseFieldType(t)
}

// ResolveField finds a field by id or by 1-based position
func ResolveField(s *store.Store, ref string) (models.Field, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Field{}, fmt.Errorf("field reference cannot be empty")
	}

	if f, ok := s.Field(ref); ok {
		return f, nil
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if f, ok := s.At(n - 1); ok {
			return f, nil
		}
		return models.Field{}, fmt.Errorf("no field at position %d (form has %d)", n, s.Len())
	}

	return models.Field{}, fmt.Errorf("field '%s' not found", ref)
}

// ParsePosition parses a 1-based position argument into a 0-based index
func ParsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: must be a number", arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid position %d: positions start at 1", n)
	}
	return n - 1, nil
}

// ParseOptions splits a comma separated option list, dropping blanks
func ParseOptions(raw string) []string {
	opts := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			opts = append(opts, p)
		}
	}
	return opts
}
