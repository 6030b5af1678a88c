package validate

// Field tracks one input's value and validation state against a rule list.
type Field struct {
	rules   []Rule
	value   any
	touched bool
	dirty   bool
	valid   bool
	errors  []string
}

// NewField creates a field with the given rules. The field starts valid,
// untouched, and clean; the first SetValue or Validate evaluates the rules.
func NewField(rules ...Rule) *Field {
	return &Field{rules: rules, valid: true}
}

// Value returns the current value.
func (f *Field) Value() any { return f.value }

// Touched reports whether the field has been blurred or force-validated.
func (f *Field) Touched() bool { return f.touched }

// Dirty reports whether the value has ever been set.
func (f *Field) Dirty() bool { return f.dirty }

// Valid reports the outcome of the last validation.
func (f *Field) Valid() bool { return f.valid }

// Errors returns the failing rules' messages in rule declaration order.
func (f *Field) Errors() []string { return f.errors }

// SetValue stores v, marks the field dirty, and validates immediately unless
// suppress is given (e.g. while programmatically seeding a form).
func (f *Field) SetValue(v any, suppress ...bool) {
	f.value = v
	f.dirty = true
	if len(suppress) > 0 && suppress[0] {
		return
	}
	f.revalidate()
}

// Touch marks the field touched (blur). If the value was never dirtied the
// rules run now so pristine required fields surface their errors.
func (f *Field) Touch() {
	wasDirty := f.dirty
	f.touched = true
	if !wasDirty {
		f.revalidate()
	}
}

// Validate forces touch plus validation and returns whether the field passes.
func (f *Field) Validate() bool {
	f.touched = true
	f.revalidate()
	return f.valid
}

// ShowError reports whether inline error text should render: the field has
// been touched and is invalid.
func (f *Field) ShowError() bool {
	return f.touched && !f.valid
}

func (f *Field) revalidate() {
	f.errors = f.errors[:0]
	for _, rule := range f.rules {
		if res := rule(f.value); !res.OK {
			f.errors = append(f.errors, res.Message)
		}
	}
	f.valid = len(f.errors) == 0
}
