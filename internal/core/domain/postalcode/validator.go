package postalcode

// Checker evaluates a single validation tag expression against a value.
// A nil error means the value satisfies the tag. Implementations must know
// the tags returned by Predicates.
type Checker interface {
	Var(field interface{}, tag string) error
}

// Validator applies a fixed rule table. It holds no mutable state and is
// safe for concurrent use.
type Validator struct {
	checker Checker
	policy  Policy
	rules   []Rule
}

func NewValidator(checker Checker, policy Policy) (*Validator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Validator{
		checker: checker,
		policy:  policy,
		rules:   Rules(policy),
	}, nil
}

func (v *Validator) Policy() Policy {
	return v.policy
}

func (v *Validator) Rules() []Rule {
	out := make([]Rule, len(v.rules))
	copy(out, v.rules)
	return out
}

// Validate runs every rule against the cleaned input. Fields are evaluated
// independently so all problems are reported in one pass.
func (v *Validator) Validate(input FormInput) Result {
	cleaned := input.clean(v.policy)

	var violations []Violation
	halted := make(map[string]bool, 2)

	for _, rule := range v.rules {
		if halted[rule.Field] {
			continue
		}
		if err := v.checker.Var(cleaned.value(rule.Field), rule.Tag); err == nil {
			continue
		}

		violations = append(violations, Violation{
			Field:   rule.Field,
			Kind:    rule.Kind,
			Message: rule.Message,
		})
		if rule.Fatal {
			halted[rule.Field] = true
		}
	}

	return Result{
		Cleaned:    cleaned,
		Violations: violations,
	}
}
