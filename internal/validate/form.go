package validate

// Form tracks the values, errors and touched set of one wizard form. A
// field's error only becomes visible after the field has been touched;
// Validate runs every rule regardless, for submit-time checks.
type Form struct {
	initial map[string]string
	rules   map[string]Rule
	values  map[string]string
	errors  map[string]string
	touched map[string]bool
}

// NewForm creates a form with the given initial values and rules
func NewForm(initial map[string]string, rules map[string]Rule) *Form {
	f := &Form{
		initial: initial,
		rules:   rules,
	}
	f.Reset()
	return f
}

// Change records a new value. The field is revalidated only if it has
// already been touched.
func (f *Form) Change(name, value string) {
	f.values[name] = value
	if f.touched[name] {
		if rule, ok := f.rules[name]; ok {
			f.errors[name] = Field(value, rule)
		}
	}
}

// Blur marks a field touched and always revalidates it
func (f *Form) Blur(name string) {
	f.touched[name] = true
	if rule, ok := f.rules[name]; ok {
		f.errors[name] = Field(f.values[name], rule)
	}
}

// Validate evaluates all declared rules and replaces the error map
func (f *Form) Validate() map[string]string {
	f.errors = All(f.values, f.rules)
	return f.FieldErrors()
}

// IsValid reports whether no field currently holds an error
func (f *Form) IsValid() bool {
	return Valid(f.errors)
}

// Value returns the current value of a field
func (f *Form) Value(name string) string {
	return f.values[name]
}

// Values returns a copy of all current field values
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for name, value := range f.values {
		out[name] = value
	}
	return out
}

// FieldErrors returns a copy of the current error map
func (f *Form) FieldErrors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for name, msg := range f.errors {
		out[name] = msg
	}
	return out
}

// Touched reports whether a field has received a blur
func (f *Form) Touched(name string) bool {
	return f.touched[name]
}

// Reset restores every field to its initial value and clears errors and
// the touched set
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.initial))
	for name, value := range f.initial {
		f.values[name] = value
	}
	f.errors = make(map[string]string)
	f.touched = make(map[string]bool)
}
