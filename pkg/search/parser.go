package search

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

var ErrInvalidQuery = errors.New("invalid query")

// Attribute names the part of a field a condition looks at
type Attribute string

const (
	AttrType        Attribute = "type"
	AttrLabel       Attribute = "label"
	AttrPlaceholder Attribute = "placeholder"
	AttrRequired    Attribute = "required"
	AttrOption      Attribute = "option"
	AttrID          Attribute = "id"
)

// Operator joins two conditions
type Operator string

const (
	OperatorAND Operator = "AND"
	OperatorOR  Operator = "OR"
)

// Condition represents a single attribute test
type Condition struct {
	Attr   Attribute
	Value  string
	Negate bool
}

// Query represents a parsed field query. Conditions are combined left to
// right; Logic[i] sits between Conditions[i] and Conditions[i+1].
type Query struct {
	Conditions []Condition
	Logic      []Operator
	Raw        string
}

// Parser turns query strings such as `type:number AND NOT required:true`
// into a Query
type Parser struct {
	attrPattern   *regexp.Regexp
	quotedPattern *regexp.Regexp
}

// NewParser creates a new query parser
func NewParser() *Parser {
	return &Parser{
		attrPattern:   regexp.MustCompile(`^(\w+):(.+)$`),
		quotedPattern: regexp.MustCompile(`^"([^"]*)"$`),
	}
}

// Parse parses input. An empty or blank input yields a query without
// conditions, which matches every field.
func (p *Parser) Parse(input string) (*Query, error) {
	query := &Query{Raw: input}

	tokens := p.tokenize(input)
	if err := p.parseTokens(tokens, query); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return query, nil
}

// tokenize splits on unquoted whitespace
func (p *Parser) tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case (r == ' ' || r == '\t') && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

func (p *Parser) parseTokens(tokens []string, query *Query) error {
	pending := Operator("")
	negate := false

	for _, token := range tokens {
		switch strings.ToUpper(token) {
		case "AND", "OR":
			if len(query.Conditions) == 0 {
				return fmt.Errorf("unexpected operator %s at beginning of query", token)
			}
			if pending != "" || negate {
				return fmt.Errorf("unexpected operator %s", token)
			}
			pending = Operator(strings.ToUpper(token))
			continue
		case "NOT":
			if negate {
				return fmt.Errorf("NOT NOT is not supported")
			}
			negate = true
			continue
		}

		cond, err := p.parseCondition(token)
		if err != nil {
			return err
		}
		cond.Negate = negate
		negate = false

		if len(query.Conditions) > 0 {
			if pending == "" {
				pending = OperatorAND
			}
			query.Logic = append(query.Logic, pending)
		}
		pending = ""
		query.Conditions = append(query.Conditions, cond)
	}

	if negate {
		return fmt.Errorf("NOT operator requires a condition")
	}
	if pending != "" {
		return fmt.Errorf("%s operator requires a condition", pending)
	}
	return nil
}

// parseCondition parses attr:value; a bare word searches labels
func (p *Parser) parseCondition(token string) (Condition, error) {
	matches := p.attrPattern.FindStringSubmatch(token)
	if len(matches) != 3 {
		return Condition{Attr: AttrLabel, Value: p.unquote(token)}, nil
	}

	attr := Attribute(strings.ToLower(matches[1]))
	value := p.unquote(matches[2])

	switch attr {
	case AttrLabel, AttrPlaceholder, AttrOption, AttrID:
	case AttrType:
		t, err := models.ParseFieldType(value)
		if err != nil {
			return Condition{}, err
		}
		value = string(t)
	case AttrRequired:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return Condition{}, fmt.Errorf("required expects true or false, got %q", value)
		}
		value = cast.ToString(b)
	default:
		return Condition{}, fmt.Errorf("unknown attribute: %s", attr)
	}

	return Condition{Attr: attr, Value: value}, nil
}

func (p *Parser) unquote(s string) string {
	if matches := p.quotedPattern.FindStringSubmatch(s); len(matches) == 2 {
		return matches[1]
	}
	return s
}
