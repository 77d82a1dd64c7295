package form

import (
	"regexp"
	"unicode/utf8"
)

// Kind is the semantic type a field's text is coerced into.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDecimal
	KindDate
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindReference:
		return "reference"
	default:
		return "text"
	}
}

// FieldSpec describes one bindable input. Specs are fixed per entity type.
type FieldSpec struct {
	Key      string
	Label    string
	Kind     Kind
	Required bool
	// Identity marks the id field, which is never subject to the required check.
	Identity bool
	// MaxLen limits typed input in runes. Zero means unlimited.
	MaxLen int
	// Min and Max bound numeric values after coercion. Nil means unbounded.
	Min *float64
	Max *float64
}

var (
	integerInput = regexp.MustCompile(`^\d*$`)
	decimalInput = regexp.MustCompile(`^\d*(\.\d*)?$`)
	dateInput    = regexp.MustCompile(`^[\d/]*$`)
)

// Admits reports whether text is acceptable as typed input for this field.
// It filters keystrokes only; it never produces validation messages.
func (s FieldSpec) Admits(text string) bool {
	if s.MaxLen > 0 && utf8.RuneCountInString(text) > s.MaxLen {
		return false
	}
	switch s.Kind {
	case KindInteger:
		return integerInput.MatchString(text)
	case KindDecimal:
		return decimalInput.MatchString(text)
	case KindDate:
		return dateInput.MatchString(text)
	}
	return true
}

func (s FieldSpec) inRange(v float64) bool {
	if s.Min != nil && v < *s.Min {
		return false
	}
	if s.Max != nil && v > *s.Max {
		return false
	}
	return true
}

// Field is a named input the binder reads from and writes to. Implementations
// are passive holders with no validation of their own.
type Field interface {
	Value() any
	SetValue(v any)
	SetErrorText(msg string)
	ErrorText() string
}

// Selector is implemented by fields that can fall back to their first option.
type Selector interface {
	SelectFirst()
}

// Fields maps spec keys to inputs.
type Fields map[string]Field

// NewFields builds a default field set: a TextField for scalar kinds and an
// empty ChoiceField for references.
func NewFields(specs []FieldSpec) Fields {
	fields := make(Fields, len(specs))
	for _, spec := range specs {
		if spec.Kind == KindReference {
			fields[spec.Key] = NewChoiceField(nil)
			continue
		}
		fields[spec.Key] = NewTextField(spec)
	}
	return fields
}

// TextField holds free text.
type TextField struct {
	spec    FieldSpec
	text    string
	errText string
}

// NewTextField returns an empty text field constrained by spec.
func NewTextField(spec FieldSpec) *TextField {
	return &TextField{spec: spec}
}

// Text returns the current text.
func (f *TextField) Text() string { return f.text }

// Input replaces the text if the spec admits it and reports whether it did.
func (f *TextField) Input(text string) bool {
	if !f.spec.Admits(text) {
		return false
	}
	f.text = text
	return true
}

// Value returns the text as a string.
func (f *TextField) Value() any { return f.text }

// SetValue replaces the text without input filtering. Non-string values are
// treated as empty.
func (f *TextField) SetValue(v any) {
	s, _ := v.(string)
	f.text = s
}

func (f *TextField) SetErrorText(msg string) { f.errText = msg }
func (f *TextField) ErrorText() string       { return f.errText }

// Option is one selectable reference value.
type Option struct {
	Label string
	Value any
}

// ChoiceField selects one reference among a set of options.
type ChoiceField struct {
	options []Option
	value   any
	equal   func(a, b any) bool
	errText string
}

// NewChoiceField returns a choice field with no selection. equal matches a
// bound value against the options; nil uses ==.
func NewChoiceField(equal func(a, b any) bool) *ChoiceField {
	if equal == nil {
		equal = func(a, b any) bool { return a == b }
	}
	return &ChoiceField{equal: equal}
}

// SetEqual replaces the match function.
func (f *ChoiceField) SetEqual(equal func(a, b any) bool) {
	if equal != nil {
		f.equal = equal
	}
}

// SetOptions replaces the option list. The current selection is kept.
func (f *ChoiceField) SetOptions(options []Option) {
	f.options = append([]Option(nil), options...)
}

// Options returns the option list.
func (f *ChoiceField) Options() []Option {
	return append([]Option(nil), f.options...)
}

// Value returns the selected reference, or nil.
func (f *ChoiceField) Value() any { return f.value }

// SetValue selects v. A value not among the options is still held, matching
// how a combo box accepts an arbitrary value.
func (f *ChoiceField) SetValue(v any) {
	if idx := f.index(v); idx >= 0 {
		f.value = f.options[idx].Value
		return
	}
	f.value = v
}

// SelectFirst selects the first option, if any.
func (f *ChoiceField) SelectFirst() {
	if len(f.options) > 0 {
		f.value = f.options[0].Value
	}
}

// Clear removes the selection.
func (f *ChoiceField) Clear() { f.value = nil }

// Next moves the selection forward, wrapping around.
func (f *ChoiceField) Next() { f.step(1) }

// Prev moves the selection backward, wrapping around.
func (f *ChoiceField) Prev() { f.step(-1) }

// Label returns the label of the selected option, or "" when nothing matches.
func (f *ChoiceField) Label() string {
	if idx := f.index(f.value); idx >= 0 {
		return f.options[idx].Label
	}
	return ""
}

func (f *ChoiceField) SetErrorText(msg string) { f.errText = msg }
func (f *ChoiceField) ErrorText() string       { return f.errText }

func (f *ChoiceField) step(delta int) {
	n := len(f.options)
	if n == 0 {
		return
	}
	idx := f.index(f.value)
	if idx < 0 {
		if delta > 0 {
			idx = 0
		} else {
			idx = n - 1
		}
		f.value = f.options[idx].Value
		return
	}
	f.value = f.options[(idx+delta+n)%n].Value
}

func (f *ChoiceField) index(v any) int {
	if v == nil {
		return -1
	}
	for i, opt := range f.options {
		if f.equal(opt.Value, v) {
			return i
		}
	}
	return -1
}
