package validate

import "context"

// Form aggregates named fields into one validation unit.
type Form struct {
	fields     map[string]*Field
	order      []string
	submitting bool
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{fields: make(map[string]*Field)}
}

// AddField registers a field under name. Re-adding a name replaces the field
// but keeps its position in declaration order.
func (f *Form) AddField(name string, field *Field) *Form {
	if _, exists := f.fields[name]; !exists {
		f.order = append(f.order, name)
	}
	f.fields[name] = field
	return f
}

// Field returns the named field, or nil.
func (f *Form) Field(name string) *Field {
	return f.fields[name]
}

// FieldNames returns the field names in declaration order.
func (f *Form) FieldNames() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Validate validates every field and returns true only if all pass. All
// fields are evaluated — no short-circuit — so every field's errors are
// populated for display.
func (f *Form) Validate() bool {
	allValid := true
	for _, name := range f.order {
		if !f.fields[name].Validate() {
			allValid = false
		}
	}
	return allValid
}

// Values returns a snapshot of every field's value by name.
func (f *Form) Values() map[string]any {
	out := make(map[string]any, len(f.fields))
	for name, field := range f.fields {
		out[name] = field.Value()
	}
	return out
}

// Errors returns every invalid field's messages by name.
func (f *Form) Errors() map[string][]string {
	out := make(map[string][]string)
	for name, field := range f.fields {
		if !field.Valid() && len(field.Errors()) > 0 {
			out[name] = field.Errors()
		}
	}
	return out
}

// Submitting reports whether a HandleSubmit call is in flight.
func (f *Form) Submitting() bool { return f.submitting }

// HandleSubmit validates the form, and if it passes, sets the submitting
// flag, invokes fn with the collected values, and clears the flag again in a
// deferred path regardless of error or panic. A failed validation returns
// false with a nil error and never calls fn.
func (f *Form) HandleSubmit(ctx context.Context, fn func(ctx context.Context, values map[string]any) error) (submitted bool, err error) {
	if !f.Validate() {
		return false, nil
	}
	f.submitting = true
	defer func() { f.submitting = false }()
	return true, fn(ctx, f.Values())
}
