package postalcode

import "strings"

const (
	FieldName    = "name"
	FieldZipCode = "zipCode"
)

// FormInput is one submission attempt as captured by the form widget.
type FormInput struct {
	Name    string `json:"name" yaml:"name"`
	ZipCode string `json:"zipCode" yaml:"zipCode"`
}

func (in FormInput) value(field string) string {
	switch field {
	case FieldName:
		return in.Name
	case FieldZipCode:
		return in.ZipCode
	default:
		return ""
	}
}

// clean applies the policy's normalization. Casing is never changed.
func (in FormInput) clean(p Policy) FormInput {
	out := FormInput{
		Name:    strings.TrimSpace(in.Name),
		ZipCode: in.ZipCode,
	}
	if p.Whitespace == WhitespaceTrim {
		out.ZipCode = strings.TrimSpace(in.ZipCode)
	}
	return out
}
