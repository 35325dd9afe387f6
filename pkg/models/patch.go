package models

import "fmt"

// FieldPatch describes a partial update to a field. Every non-nil key
// replaces the prior value wholesale, Validation included. ID and Type are
// immutable and therefore not part of the patch.
type FieldPatch struct {
	Label       *string
	Placeholder *string
	Validation  *Validation
	Options     *[]string
}

// Empty reports whether the patch changes nothing
func (p FieldPatch) Empty() bool {
	return p.Label == nil && p.Placeholder == nil && p.Validation == nil && p.Options == nil
}

// Apply returns f with the patch merged in. f itself is not modified.
func Apply(f Field, p FieldPatch) Field {
	out := f.Clone()
	if p.Label != nil {
		out.Label = *p.Label
	}
	if p.Placeholder != nil {
		out.Placeholder = *p.Placeholder
	}
	if p.Validation != nil {
		out.Validation = p.Validation.Clone()
	}
	if p.Options != nil {
		out.Options = append([]string{}, (*p.Options)...)
	}
	return out
}

// LabelPatch is shorthand for a patch that only changes the label
func LabelPatch(label string) FieldPatch {
	return FieldPatch{Label: &label}
}

// PlaceholderPatch is shorthand for a patch that only changes the placeholder
func PlaceholderPatch(placeholder string) FieldPatch {
	return FieldPatch{Placeholder: &placeholder}
}

// ValidationPatch is shorthand for a patch that replaces the validation record
func ValidationPatch(v Validation) FieldPatch {
	return FieldPatch{Validation: &v}
}

// OptionsPatch is shorthand for a patch that replaces the option list
func OptionsPatch(options []string) FieldPatch {
	return FieldPatch{Options: &options}
}

// AddOption appends the next numbered option ("Option n+1")
func AddOption(options []string) []string {
	out := make([]string, 0, len(options)+1)
	out = append(out, options...)
	return append(out, fmt.Sprintf("Option %d", len(options)+1))
}

// RemoveOption drops the option at index. An out of range index returns an
// unchanged copy.
func RemoveOption(options []string, index int) []string {
	out := make([]string, 0, len(options))
	for i, opt := range options {
		if i != index {
			out = append(out, opt)
		}
	}
	return out
}

// SetOption replaces the option at index. An out of range index returns an
// unchanged copy.
func SetOption(options []string, index int, value string) []string {
	out := append([]string{}, options...)
	if index >= 0 && index < len(out) {
		out[index] = value
	}
	return out
}
