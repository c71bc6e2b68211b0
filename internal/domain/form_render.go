package domain

import (
	"strings"
)

// Control identifies the concrete input control a bound input renders as.
type Control string

const (
	ControlText     Control = "text"
	ControlEmail    Control = "email"
	ControlTel      Control = "tel"
	ControlDate     Control = "date"
	ControlTextarea Control = "textarea"
	ControlCheckbox Control = "checkbox"
	ControlRadio    Control = "radio"
	ControlSelect   Control = "select"
)

// SelectOption is one choice of a select or radio control.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BoundInput is one concrete input of a rendered form. Name is the
// collection key the submitted value comes back under; ID is the HTML-level
// identifier from the field descriptor.
type BoundInput struct {
	Name      string         `json:"name"`
	ID        string         `json:"id"`
	Label     string         `json:"label,omitempty"`
	Control   Control        `json:"control"`
	Required  bool           `json:"required"`
	Value     string         `json:"value,omitempty"`
	Checked   bool           `json:"checked,omitempty"`
	Options   []SelectOption `json:"options,omitempty"`
	Uppercase bool           `json:"uppercase,omitempty"`
	Hidden    bool           `json:"hidden,omitempty"`
	// RevealedBy names the select whose "outros" choice reveals this input.
	RevealedBy string `json:"revealed_by,omitempty"`
}

// CountryCodeOther is the sentinel select value that reveals the free-text
// country code input.
const CountryCodeOther = "outros"

// DefaultCountryCode is preselected on empty phone fields.
const DefaultCountryCode = "+44"

// Collection-key suffixes for the three inputs of a composite phone field.
const (
	countryCodeSuffix      = "_country_code"
	otherCountryCodeSuffix = "_other_country_code"
	phoneNumberSuffix      = "_phone"
)

func countryCodeOptions() []SelectOption {
	return []SelectOption{
		{Value: "+44", Label: "+44"},
		{Value: "+351", Label: "+351"},
		{Value: "+55", Label: "+55"},
		{Value: "+1", Label: "+1"},
		{Value: "+244", Label: "+244"},
		{Value: CountryCodeOther, Label: "Outros"},
	}
}

func isKnownCountryCode(code string) bool {
	for _, opt := range countryCodeOptions() {
		if opt.Value != CountryCodeOther && opt.Value == code {
			return true
		}
	}
	return false
}

// RenderFields produces the ordered input surface for a blank form, one or
// more bound inputs per field descriptor, in schema order.
func RenderFields(schema *FormSchema) []BoundInput {
	return renderInputs(schema, nil)
}

// RenderForEdit produces the same input surface pre-populated with an
// existing submission's values. Labels that no longer match any key of the
// submission render empty.
func RenderForEdit(schema *FormSchema, submission *Submission) []BoundInput {
	return renderInputs(schema, submission.FormData)
}

func renderInputs(schema *FormSchema, data FormData) []BoundInput {
	inputs := make([]BoundInput, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		value := ""
		if data != nil {
			value = data[field.Label]
		}

		switch field.Type {
		case FieldTypeCheckbox:
			inputs = append(inputs, BoundInput{
				Name:    field.Label,
				ID:      field.Name,
				Label:   field.Label,
				Control: ControlCheckbox,
				Checked: value == AnswerYes,
			})

		case FieldTypeRadioYesNo:
			inputs = append(inputs, BoundInput{
				Name:     field.Label,
				ID:       field.Name,
				Label:    field.Label,
				Control:  ControlRadio,
				Required: true,
				Value:    value,
				Options: []SelectOption{
					{Value: AnswerYes, Label: AnswerYes},
					{Value: AnswerNo, Label: AnswerNo},
				},
			})

		case FieldTypeFullPhone:
			inputs = append(inputs, renderPhoneInputs(field, value)...)

		case FieldTypePostalCode:
			inputs = append(inputs, BoundInput{
				Name:      field.Label,
				ID:        field.Name,
				Label:     field.Label,
				Control:   ControlText,
				Required:  true,
				Value:     value,
				Uppercase: true,
			})

		case FieldTypeTextarea:
			inputs = append(inputs, BoundInput{
				Name:     field.Label,
				ID:       field.Name,
				Label:    field.Label,
				Control:  ControlTextarea,
				Required: true,
				Value:    value,
			})

		case FieldTypeText, FieldTypeEmail, FieldTypeTel, FieldTypeDate:
			inputs = append(inputs, BoundInput{
				Name:     field.Label,
				ID:       field.Name,
				Label:    field.Label,
				Control:  Control(field.Type),
				Required: true,
				Value:    value,
			})
		}
	}
	return inputs
}

// renderPhoneInputs expands one composite phone field into its three
// concrete inputs: the country-code select, the free-text code box revealed
// by the "outros" choice, and the number box.
func renderPhoneInputs(field FieldDescriptor, value string) []BoundInput {
	selectValue := DefaultCountryCode
	otherValue := ""
	phoneValue := ""

	if value != "" {
		code, number, found := strings.Cut(value, " ")
		if !found {
			number = code
			code = DefaultCountryCode
		}
		phoneValue = number
		if isKnownCountryCode(code) {
			selectValue = code
		} else {
			selectValue = CountryCodeOther
			otherValue = code
		}
	}

	selectName := field.Label + countryCodeSuffix
	return []BoundInput{
		{
			Name:    selectName,
			ID:      field.Name + countryCodeSuffix,
			Label:   field.Label,
			Control: ControlSelect,
			Value:   selectValue,
			Options: countryCodeOptions(),
		},
		{
			Name:       field.Label + otherCountryCodeSuffix,
			ID:         field.Name + otherCountryCodeSuffix,
			Control:    ControlText,
			Value:      otherValue,
			Hidden:     selectValue != CountryCodeOther,
			RevealedBy: selectName,
		},
		{
			Name:     field.Label + phoneNumberSuffix,
			ID:       field.Name + phoneNumberSuffix,
			Control:  ControlTel,
			Required: true,
			Value:    phoneValue,
		},
	}
}
