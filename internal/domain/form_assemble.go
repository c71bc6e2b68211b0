package domain

import (
	"fmt"
	"strings"
)

// RawValues holds the collected input values of one submission attempt,
// keyed by bound-input name. A checkbox counts as checked when its key is
// present, whatever the value.
type RawValues map[string]string

// Get returns the value collected under name, or "" if absent.
func (v RawValues) Get(name string) string {
	return v[name]
}

// Has reports whether any value was collected under name.
func (v RawValues) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// AssembleSubmission converts raw collected values into the label-keyed
// record stored for a submission, walking fields in schema order and
// applying the per-type assembly rules. It returns the assembled record and
// the derived display name.
//
// A required field (any type except checkbox) collected empty yields a
// ValidationError and nothing is assembled.
func AssembleSubmission(fields []FieldDescriptor, values RawValues) (FormData, string, error) {
	data := make(FormData, len(fields))

	for _, field := range fields {
		switch field.Type {
		case FieldTypeFullPhone:
			code := values.Get(field.Label + countryCodeSuffix)
			if code == CountryCodeOther {
				code = values.Get(field.Label + otherCountryCodeSuffix)
			}
			number := values.Get(field.Label + phoneNumberSuffix)
			if code == "" || number == "" {
				return nil, "", NewValidationError(fmt.Sprintf("field %q is required", field.Label))
			}
			data[field.Label] = code + " " + number

		case FieldTypeCheckbox:
			if values.Has(field.Label) {
				data[field.Label] = AnswerYes
			} else {
				data[field.Label] = AnswerNo
			}

		case FieldTypeRadioYesNo:
			answer := values.Get(field.Label)
			if answer != AnswerYes && answer != AnswerNo {
				return nil, "", NewValidationError(fmt.Sprintf("field %q is required", field.Label))
			}
			data[field.Label] = answer

		case FieldTypePostalCode:
			value := values.Get(field.Label)
			if value == "" {
				return nil, "", NewValidationError(fmt.Sprintf("field %q is required", field.Label))
			}
			// The input layer upper-cases on every keystroke; normalizing
			// again keeps clients that bypass it consistent.
			data[field.Label] = strings.ToUpper(value)

		case FieldTypeText, FieldTypeEmail, FieldTypeTel, FieldTypeDate, FieldTypeTextarea:
			value := values.Get(field.Label)
			if value == "" {
				return nil, "", NewValidationError(fmt.Sprintf("field %q is required", field.Label))
			}
			data[field.Label] = value
		}
	}

	nome := DefaultRespondentName
	if label := FirstNameLabel(fields); label != "" {
		if value, ok := data[label]; ok {
			nome = value
		}
	}

	return data, nome, nil
}
