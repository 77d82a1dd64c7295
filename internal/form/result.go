package form

// MsgRequired is recorded for a required field left empty.
const MsgRequired = "Field can't be empty"

// MsgOutOfRange is recorded for a numeric value outside its declared range.
const MsgOutOfRange = "Value out of range"

// ValidationResult collects field-keyed messages for one validation pass.
// A key is present only when that field is invalid. Create a new result for
// every save attempt.
type ValidationResult struct {
	errors map[string]string
	order  []string
}

// NewValidationResult returns an empty result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{errors: map[string]string{}}
}

// AddError records message for key. A second call for the same key replaces
// the message without duplicating the key.
func (r *ValidationResult) AddError(key, message string) {
	if r.errors == nil {
		r.errors = map[string]string{}
	}
	if _, ok := r.errors[key]; !ok {
		r.order = append(r.order, key)
	}
	r.errors[key] = message
}

// HasErrors reports whether any field is invalid.
func (r *ValidationResult) HasErrors() bool {
	return r != nil && len(r.errors) > 0
}

// ErrorFor returns the message recorded for key, if any.
func (r *ValidationResult) ErrorFor(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	msg, ok := r.errors[key]
	return msg, ok
}

// Keys returns invalid field keys in the order they were first flagged.
func (r *ValidationResult) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Errors returns a copy of the key to message mapping.
func (r *ValidationResult) Errors() map[string]string {
	out := make(map[string]string)
	if r == nil {
		return out
	}
	for k, v := range r.errors {
		out[k] = v
	}
	return out
}

// Err converts the result into a *ValidationError, or nil when valid.
func (r *ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &ValidationError{Fields: r.Errors()}
}
