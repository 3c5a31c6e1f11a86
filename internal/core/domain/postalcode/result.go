package postalcode

type Violation struct {
	Field   string `json:"field" yaml:"field"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// Result is the outcome of one Validate call. Cleaned is always populated;
// callers should only use it when Valid reports true.
type Result struct {
	Cleaned    FormInput
	Violations []Violation
}

func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Errors groups messages by field, keeping rule order within each field.
func (r Result) Errors() map[string][]string {
	return r.ErrorsFor(FieldName, FieldZipCode)
}

// ErrorsFor is Errors restricted to the given fields, e.g. the ones the
// user has touched so far.
func (r Result) ErrorsFor(fields ...string) map[string][]string {
	if r.Valid() || len(fields) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		wanted[f] = struct{}{}
	}

	var out map[string][]string
	for _, v := range r.Violations {
		if _, ok := wanted[v.Field]; !ok {
			continue
		}
		if out == nil {
			out = make(map[string][]string)
		}
		out[v.Field] = append(out[v.Field], v.Message)
	}
	return out
}

// Err returns nil for a valid result and an *InvalidInputError otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &InvalidInputError{Violations: r.Violations}
}
