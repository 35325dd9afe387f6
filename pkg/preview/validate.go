// Package preview validates live input against the form definition. It
// keeps its own transient values and errors and never writes back to the
// store.
package preview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

// Value is what the user entered for a field: a string from a text input,
// or a number when the caller already has one.
type Value = any

const (
	MsgRequired = "This field is required."
	msgMin      = "Value must be at least %s."
	msgMax      = "Value must not exceed %s."
)

// Validate returns the error message for v against f, or "" when v passes
func Validate(f models.Field, v Value) string {
	rules := f.Validation

	if rules.Required && IsEmpty(v) {
		return MsgRequired
	}

	var msg string
	if f.Type == models.FieldTypeNumber && !IsEmpty(v) {
		n := toNumber(v)
		if rules.Min != nil && n < *rules.Min {
			msg = fmt.Sprintf(msgMin, FormatNumber(*rules.Min))
		}
		// Checked second so it wins when both bounds fire
		if rules.Max != nil && n > *rules.Max {
			msg = fmt.Sprintf(msgMax, FormatNumber(*rules.Max))
		}
	}

	return msg
}

// IsEmpty reports whether v counts as "nothing entered"
func IsEmpty(v Value) bool {
	return v == nil || isBlankString(v)
}

func isBlankString(v Value) bool {
	s, ok := v.(string)
	return ok && s == ""
}

// toNumber converts v the way a browser number input would. Anything that
// does not parse becomes NaN, which fails every comparison so no bound
// fires.
func toNumber(v Value) float64 {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		v = s
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}
	return n
}

// FormatNumber renders n in its shortest form: 0, 2.5, 100
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
