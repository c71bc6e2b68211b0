package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTypeValidate(t *testing.T) {
	valid := []FieldType{
		FieldTypeText, FieldTypeEmail, FieldTypeTel, FieldTypeDate,
		FieldTypeTextarea, FieldTypeCheckbox, FieldTypeRadioYesNo,
		FieldTypeFullPhone, FieldTypePostalCode,
	}
	for _, ft := range valid {
		assert.NoError(t, ft.Validate(), "type %s should be valid", ft)
	}

	err := FieldType("select_multi").Validate()
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
}

func TestNewFieldDescriptor(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	t.Run("derives identifier from label", func(t *testing.T) {
		field := NewFieldDescriptor(FieldTypeText, "Nome Completo", now)
		assert.Equal(t, "Nome Completo", field.Label)
		assert.Equal(t, FieldTypeText, field.Type)
		assert.Equal(t, "nome-completo_1700000000000", field.Name)
	})

	t.Run("falls back to type for empty label", func(t *testing.T) {
		field := NewFieldDescriptor(FieldTypeCheckbox, "", now)
		assert.Equal(t, "checkbox_1700000000000", field.Name)
	})

	t.Run("slugs accented labels", func(t *testing.T) {
		field := NewFieldDescriptor(FieldTypeText, "Endereço", now)
		assert.Equal(t, "endereco_1700000000000", field.Name)
	})
}

func TestFormSchemaValidate(t *testing.T) {
	t.Run("valid schema", func(t *testing.T) {
		form := &FormSchema{
			Title: "Inscrição Conferência",
			Fields: FieldList{
				{Label: "Nome", Type: FieldTypeText, Name: "nome_1"},
				{Label: "Telefone", Type: FieldTypeFullPhone, Name: "telefone_1"},
			},
		}
		assert.NoError(t, form.Validate())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		form := &FormSchema{Title: ""}
		assert.Error(t, form.Validate())
	})

	t.Run("empty field list accepted", func(t *testing.T) {
		form := &FormSchema{Title: "Sem Campos"}
		assert.NoError(t, form.Validate())
	})

	t.Run("field with empty label rejected", func(t *testing.T) {
		form := &FormSchema{
			Title:  "Inscrição",
			Fields: FieldList{{Label: "", Type: FieldTypeText}},
		}
		assert.Error(t, form.Validate())
	})

	t.Run("field with unknown type rejected", func(t *testing.T) {
		form := &FormSchema{
			Title:  "Inscrição",
			Fields: FieldList{{Label: "Nome", Type: "range"}},
		}
		assert.Error(t, form.Validate())
	})
}

func TestFormSchemaDuplicateLabels(t *testing.T) {
	form := &FormSchema{
		Title: "Inscrição",
		Fields: FieldList{
			{Label: "Nome", Type: FieldTypeText},
			{Label: "Email", Type: FieldTypeEmail},
			{Label: "Nome", Type: FieldTypeText},
			{Label: "Nome", Type: FieldTypeTextarea},
		},
	}
	assert.Equal(t, []string{"Nome"}, form.DuplicateLabels())

	clean := &FormSchema{
		Title:  "Inscrição",
		Fields: FieldList{{Label: "Nome", Type: FieldTypeText}},
	}
	assert.Empty(t, clean.DuplicateLabels())
}

func TestFieldListScanValue(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := FieldList{
			{Label: "Nome", Type: FieldTypeText, Name: "nome_1"},
			{Label: "Vai de carro?", Type: FieldTypeCheckbox, Name: "vai-de-carro_2"},
		}
		value, err := original.Value()
		require.NoError(t, err)

		var scanned FieldList
		require.NoError(t, scanned.Scan(value))
		assert.Equal(t, original, scanned)
	})

	t.Run("nil value scans to empty list", func(t *testing.T) {
		var scanned FieldList
		require.NoError(t, scanned.Scan(nil))
		assert.Empty(t, scanned)
	})

	t.Run("nil list stores empty array", func(t *testing.T) {
		var list FieldList
		value, err := list.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", value)
	})
}

func TestFormDataScanValue(t *testing.T) {
	original := FormData{"Nome": "Maria Silva", "Telefone": "+44 7700123456"}
	value, err := original.Value()
	require.NoError(t, err)

	var scanned FormData
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	var fromNil FormData
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)
}

func TestFirstNameLabel(t *testing.T) {
	t.Run("first matching label wins", func(t *testing.T) {
		fields := []FieldDescriptor{
			{Label: "Email", Type: FieldTypeEmail},
			{Label: "Nome Completo", Type: FieldTypeText},
			{Label: "Nome do Cônjuge", Type: FieldTypeText},
		}
		assert.Equal(t, "Nome Completo", FirstNameLabel(fields))
	})

	t.Run("case insensitive", func(t *testing.T) {
		fields := []FieldDescriptor{{Label: "NOME", Type: FieldTypeText}}
		assert.Equal(t, "NOME", FirstNameLabel(fields))
	})

	t.Run("no match", func(t *testing.T) {
		fields := []FieldDescriptor{{Label: "Email", Type: FieldTypeEmail}}
		assert.Equal(t, "", FirstNameLabel(fields))
	})
}

func TestRequestValidation(t *testing.T) {
	t.Run("create form requires title", func(t *testing.T) {
		req := &CreateFormRequest{}
		assert.Error(t, req.Validate())

		req.Title = "Inscrição"
		assert.NoError(t, req.Validate())
	})

	t.Run("update form requires id and title", func(t *testing.T) {
		req := &UpdateFormRequest{Title: "Inscrição"}
		assert.Error(t, req.Validate())

		req.ID = "form-1"
		assert.NoError(t, req.Validate())
	})

	t.Run("submit requires form id", func(t *testing.T) {
		req := &SubmitFormRequest{Values: RawValues{}}
		assert.Error(t, req.Validate())

		req.FormID = "form-1"
		assert.NoError(t, req.Validate())
	})
}
