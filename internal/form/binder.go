package form

// Binding connects one FieldSpec to an attribute of T. Get returns nil when
// the attribute is absent; Set receives the coerced value (int, float64,
// time.Time, string, or the reference held by a choice field).
type Binding[T any] struct {
	Spec FieldSpec
	Get  func(entity *T) any
	Set  func(entity *T, v any)
}

// Binder copies data between an entity of type T and a set of fields.
type Binder[T any] struct {
	bindings []Binding[T]
	format   Format
}

// NewBinder returns a binder for the given bindings, in display order.
func NewBinder[T any](format Format, bindings ...Binding[T]) *Binder[T] {
	return &Binder[T]{
		bindings: append([]Binding[T](nil), bindings...),
		format:   format,
	}
}

// Specs returns the field specs in display order.
func (b *Binder[T]) Specs() []FieldSpec {
	specs := make([]FieldSpec, len(b.bindings))
	for i, bnd := range b.bindings {
		specs[i] = bnd.Spec
	}
	return specs
}

// Format returns the display format the binder was built with.
func (b *Binder[T]) Format() Format { return b.format }

// Populate writes the display form of each attribute of entity into its field.
// Absent attributes render as empty; an absent reference selects the first
// option. Fields missing from the set are skipped.
func (b *Binder[T]) Populate(entity *T, fields Fields) {
	for _, bnd := range b.bindings {
		field, ok := fields[bnd.Spec.Key]
		if !ok || field == nil {
			continue
		}
		var v any
		if entity != nil && bnd.Get != nil {
			v = bnd.Get(entity)
		}
		if bnd.Spec.Kind == KindReference {
			if v == nil {
				if sel, ok := field.(Selector); ok {
					sel.SelectFirst()
					continue
				}
			}
			field.SetValue(v)
			continue
		}
		field.SetValue(b.format.Display(bnd.Spec.Kind, v))
	}
}

// Extract builds a draft entity from the fields and validates each one
// independently.
//
// A value that is present but cannot be coerced (for example "12a" in a
// decimal field) is treated as absent rather than reported. The required
// check only looks at emptiness, so such input can pass validation and reach
// the service with the attribute unset. This is a known limitation.
func (b *Binder[T]) Extract(fields Fields) (*T, *ValidationResult) {
	draft := new(T)
	result := NewValidationResult()
	for _, bnd := range b.bindings {
		spec := bnd.Spec
		var raw any
		if field, ok := fields[spec.Key]; ok && field != nil {
			raw = field.Value()
		}

		if spec.Kind == KindReference {
			if raw == nil {
				if spec.Required {
					result.AddError(spec.Key, MsgRequired)
				}
				continue
			}
			if bnd.Set != nil {
				bnd.Set(draft, raw)
			}
			continue
		}

		text, _ := raw.(string)
		if text == "" {
			if spec.Required && !spec.Identity {
				result.AddError(spec.Key, MsgRequired)
			}
			continue
		}

		v, ok := b.format.Parse(spec.Kind, text)
		if !ok {
			continue
		}
		if isNumeric(spec.Kind) && !spec.inRange(numeric(v)) {
			result.AddError(spec.Key, MsgOutOfRange)
			continue
		}
		if bnd.Set != nil {
			bnd.Set(draft, v)
		}
	}
	return draft, result
}

func isNumeric(k Kind) bool {
	return k == KindInteger || k == KindDecimal
}

func numeric(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
