package postalcode

import (
	"regexp"
	"strings"
)

// Family is one accepted postal-code format.
type Family struct {
	Name     string   `json:"name" yaml:"name"`
	Expr     string   `json:"pattern" yaml:"pattern"`
	Examples []string `json:"examples" yaml:"examples"`
}

// Ordered most-constrained first so a shorter alternative never wins on a prefix.
var families = []Family{
	{
		Name:     "extended_zip",
		Expr:     `\d{5}-\d{4}|\d{5}-\d{3}`,
		Examples: []string{"12345-6789", "12345-678"},
	},
	{
		Name:     "hyphenated_numeric",
		Expr:     `\d{3}-\d{4}|\d{2}-\d{3}`,
		Examples: []string{"100-0001", "00-950"},
	},
	{
		Name:     "spaced_groups",
		Expr:     `\d{4} ?[A-Z]{2}|\d{3} \d{2}`,
		Examples: []string{"1234 AB", "123 45"},
	},
	{
		Name:     "alternating",
		Expr:     `[A-Z]\d[A-Z][ -]?\d[A-Z]\d`,
		Examples: []string{"A1A 1A1", "K1A-0B1"},
	},
	{
		Name:     "outward_inward",
		Expr:     `[A-Z]{1,2}[0-9R][0-9A-Z]? ?[0-9][A-Z]{2}`,
		Examples: []string{"SW1A 0AA", "M1 1AE", "EC1A1BB"},
	},
	{
		Name:     "letter_prefixed",
		Expr:     `[A-Z] ?\d{4} ?[A-Z]{3}`,
		Examples: []string{"C 1425 DKF", "C1425DKF"},
	},
	{
		Name:     "digits",
		Expr:     `\d{7}|\d{6}|\d{5}|\d{4}`,
		Examples: []string{"1234", "12345", "110001", "1234567"},
	},
}

var (
	familyRegexps = compileFamilies(families)
	postalRegex   = regexp.MustCompile(combinedExpr(families))
	charsetRegex  = regexp.MustCompile(`^[A-Za-z0-9 -]+$`)
)

func anchored(expr string) string {
	return `(?i)^(?:` + expr + `)$`
}

func combinedExpr(fs []Family) string {
	exprs := make([]string, len(fs))
	for i, f := range fs {
		exprs[i] = f.Expr
	}
	return anchored(strings.Join(exprs, "|"))
}

func compileFamilies(fs []Family) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(fs))
	for i, f := range fs {
		out[i] = regexp.MustCompile(anchored(f.Expr))
	}
	return out
}

// Families returns a copy of the recognized formats in match order.
func Families() []Family {
	out := make([]Family, len(families))
	for i, f := range families {
		f.Examples = append([]string(nil), f.Examples...)
		out[i] = f
	}
	return out
}

// MatchesPattern reports whether code fits any family. Case-insensitive.
func MatchesPattern(code string) bool {
	return postalRegex.MatchString(code)
}

// MatchFamily returns the first family that matches code.
func MatchFamily(code string) (Family, bool) {
	for i, re := range familyRegexps {
		if re.MatchString(code) {
			return families[i], true
		}
	}
	return Family{}, false
}

func hasAllowedCharset(s string) bool {
	return charsetRegex.MatchString(s)
}

func isUnpadded(s string) bool {
	return s == strings.TrimSpace(s)
}
