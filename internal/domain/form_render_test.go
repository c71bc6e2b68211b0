package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *FormSchema {
	return &FormSchema{
		ID:    "form-1",
		Title: "Inscrição Conferência",
		Fields: FieldList{
			{Label: "Nome Completo", Type: FieldTypeText, Name: "nome-completo_1"},
			{Label: "Email", Type: FieldTypeEmail, Name: "email_2"},
			{Label: "Telefone", Type: FieldTypeFullPhone, Name: "telefone_3"},
			{Label: "Vai de carro?", Type: FieldTypeCheckbox, Name: "vai-de-carro_4"},
			{Label: "Primeira vez?", Type: FieldTypeRadioYesNo, Name: "primeira-vez_5"},
			{Label: "Código Postal", Type: FieldTypePostalCode, Name: "codigo-postal_6"},
		},
	}
}

func TestRenderFields(t *testing.T) {
	inputs := RenderFields(testSchema())

	// text, email, 3 phone inputs, checkbox, radio, postal code
	require.Len(t, inputs, 8)

	t.Run("schema order preserved", func(t *testing.T) {
		assert.Equal(t, "Nome Completo", inputs[0].Name)
		assert.Equal(t, "Email", inputs[1].Name)
		assert.Equal(t, "Telefone_country_code", inputs[2].Name)
		assert.Equal(t, "Vai de carro?", inputs[5].Name)
	})

	t.Run("every field required except checkbox", func(t *testing.T) {
		for _, input := range inputs {
			switch input.Control {
			case ControlCheckbox, ControlSelect:
				assert.False(t, input.Required, "input %s", input.Name)
			case ControlText:
				// the hidden other-code box only becomes relevant when revealed
				if input.RevealedBy != "" {
					assert.False(t, input.Required, "input %s", input.Name)
				} else {
					assert.True(t, input.Required, "input %s", input.Name)
				}
			default:
				assert.True(t, input.Required, "input %s", input.Name)
			}
		}
	})

	t.Run("phone expands into three inputs", func(t *testing.T) {
		sel, other, number := inputs[2], inputs[3], inputs[4]

		assert.Equal(t, ControlSelect, sel.Control)
		assert.Equal(t, DefaultCountryCode, sel.Value)
		assert.Len(t, sel.Options, 6)
		assert.Equal(t, CountryCodeOther, sel.Options[5].Value)

		assert.Equal(t, "Telefone_other_country_code", other.Name)
		assert.True(t, other.Hidden)
		assert.Equal(t, sel.Name, other.RevealedBy)

		assert.Equal(t, "Telefone_phone", number.Name)
		assert.Equal(t, ControlTel, number.Control)
		assert.True(t, number.Required)
	})

	t.Run("radio carries yes/no options", func(t *testing.T) {
		radio := inputs[6]
		require.Equal(t, ControlRadio, radio.Control)
		require.Len(t, radio.Options, 2)
		assert.Equal(t, AnswerYes, radio.Options[0].Value)
		assert.Equal(t, AnswerNo, radio.Options[1].Value)
	})

	t.Run("postal code upper-cases input", func(t *testing.T) {
		postal := inputs[7]
		assert.True(t, postal.Uppercase)
		assert.Equal(t, ControlText, postal.Control)
	})
}

func TestRenderForEdit(t *testing.T) {
	schema := testSchema()
	submission := &Submission{
		ID:     "sub-1",
		FormID: schema.ID,
		FormData: FormData{
			"Nome Completo": "Maria Silva",
			"Email":         "maria@example.com",
			"Telefone":      "+351 912345678",
			"Vai de carro?": AnswerYes,
			"Primeira vez?": AnswerNo,
			"Código Postal": "SW1A 1AA",
		},
	}

	inputs := RenderForEdit(schema, submission)
	require.Len(t, inputs, 8)

	assert.Equal(t, "Maria Silva", inputs[0].Value)
	assert.Equal(t, "maria@example.com", inputs[1].Value)

	t.Run("known country code selects itself", func(t *testing.T) {
		assert.Equal(t, "+351", inputs[2].Value)
		assert.Equal(t, "", inputs[3].Value)
		assert.True(t, inputs[3].Hidden)
		assert.Equal(t, "912345678", inputs[4].Value)
	})

	t.Run("checkbox checked from stored Sim", func(t *testing.T) {
		assert.True(t, inputs[5].Checked)
	})

	t.Run("radio prefilled", func(t *testing.T) {
		assert.Equal(t, AnswerNo, inputs[6].Value)
	})
}

func TestRenderForEditUnknownCountryCode(t *testing.T) {
	schema := &FormSchema{
		ID:     "form-1",
		Title:  "Inscrição",
		Fields: FieldList{{Label: "Telefone", Type: FieldTypeFullPhone, Name: "telefone_1"}},
	}
	submission := &Submission{FormData: FormData{"Telefone": "+999 5551234"}}

	inputs := RenderForEdit(schema, submission)
	require.Len(t, inputs, 3)

	assert.Equal(t, CountryCodeOther, inputs[0].Value)
	assert.Equal(t, "+999", inputs[1].Value)
	assert.False(t, inputs[1].Hidden)
	assert.Equal(t, "5551234", inputs[2].Value)
}

func TestRenderForEditSchemaDrift(t *testing.T) {
	// submission stored under labels the schema no longer has
	schema := &FormSchema{
		ID:    "form-1",
		Title: "Inscrição",
		Fields: FieldList{
			{Label: "Nome", Type: FieldTypeText, Name: "nome_1"},
		},
	}
	submission := &Submission{FormData: FormData{"Nome Antigo": "Maria"}}

	inputs := RenderForEdit(schema, submission)
	require.Len(t, inputs, 1)
	assert.Equal(t, "", inputs[0].Value)
}
