package search

import (
	"strings"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

// Filter returns the positions of the fields matching queryStr, in form
// order
func Filter(fields []models.Field, queryStr string) ([]int, error) {
	query, err := NewParser().Parse(queryStr)
	if err != nil {
		return nil, err
	}

	var out []int
	for i, f := range fields {
		if query.Match(f) {
			out = append(out, i)
		}
	}
	return out, nil
}

// Match reports whether f satisfies the query. A query without conditions
// matches everything.
func (q *Query) Match(f models.Field) bool {
	if len(q.Conditions) == 0 {
		return true
	}

	result := q.Conditions[0].Match(f)
	for i := 1; i < len(q.Conditions); i++ {
		next := q.Conditions[i].Match(f)
		switch q.Logic[i-1] {
		case OperatorAND:
			result = result && next
		case OperatorOR:
			result = result || next
		}
	}
	return result
}

// Match evaluates a single condition against f
func (c Condition) Match(f models.Field) bool {
	var ok bool
	switch c.Attr {
	case AttrType:
		ok = string(f.Type) == c.Value
	case AttrLabel:
		ok = containsFold(f.Label, c.Value)
	case AttrPlaceholder:
		ok = containsFold(f.Placeholder, c.Value)
	case AttrID:
		ok = strings.HasPrefix(f.ID, c.Value)
	case AttrRequired:
		ok = (c.Value == "true") == f.Validation.Required
	case AttrOption:
		for _, opt := range f.Options {
			if containsFold(opt, c.Value) {
				ok = true
				break
			}
		}
	}
	if c.Negate {
		return !ok
	}
	return ok
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
