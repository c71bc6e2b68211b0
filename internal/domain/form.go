package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

//go:generate mockgen -destination mocks/mock_form_service.go -package mocks github.com/koinonia-app/koinonia/internal/domain FormService
//go:generate mockgen -destination mocks/mock_form_repository.go -package mocks github.com/koinonia-app/koinonia/internal/domain FormRepository

// FieldType is the closed set of input kinds a registration form may use.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeEmail      FieldType = "email"
	FieldTypeTel        FieldType = "tel"
	FieldTypeDate       FieldType = "date"
	FieldTypeTextarea   FieldType = "textarea"
	FieldTypeCheckbox   FieldType = "checkbox"
	FieldTypeRadioYesNo FieldType = "radio_yes_no"
	FieldTypeFullPhone  FieldType = "telefone_completo"
	FieldTypePostalCode FieldType = "post_cod"
)

// Validate checks that the field type belongs to the closed set
func (t FieldType) Validate() error {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeTel, FieldTypeDate,
		FieldTypeTextarea, FieldTypeCheckbox, FieldTypeRadioYesNo,
		FieldTypeFullPhone, FieldTypePostalCode:
		return nil
	}
	return NewValidationError(fmt.Sprintf("unknown field type: %s", t))
}

// Localized answer literals stored for yes/no style fields.
const (
	AnswerYes = "Sim"
	AnswerNo  = "Não"
)

// DefaultRespondentName is stored when no field label contains "nome".
const DefaultRespondentName = "Inscrito"

// FieldDescriptor is one configured input in a form.
//
// Label doubles as the storage key for submitted values: renaming a label
// after submissions exist orphans historical data under the old label.
// Name is only an HTML-level identifier and is never used as a storage key.
type FieldDescriptor struct {
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
	Name  string    `json:"name"`
}

// NewFieldDescriptor builds a descriptor with a generated HTML identifier
// derived from the label and the creation instant.
func NewFieldDescriptor(fieldType FieldType, label string, now time.Time) FieldDescriptor {
	base := label
	if base == "" {
		base = string(fieldType)
	}
	return FieldDescriptor{
		Label: label,
		Type:  fieldType,
		Name:  fmt.Sprintf("%s_%d", slug.Make(base), now.UnixMilli()),
	}
}

func (f *FieldDescriptor) Validate() error {
	if f.Label == "" {
		return NewValidationError("field label is required")
	}
	if len(f.Label) > 255 {
		return NewValidationError("field label length must be between 1 and 255")
	}
	return f.Type.Validate()
}

// FieldList stores the ordered field descriptors as a JSONB column.
type FieldList []FieldDescriptor

// Value implements the driver.Valuer interface
func (l FieldList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *FieldList) Scan(value interface{}) error {
	if value == nil {
		*l = FieldList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("incompatible type for FieldList")
	}
}

// FormData maps field labels to assembled values, stored as a JSONB column.
type FormData map[string]string

// Value implements the driver.Valuer interface
func (d FormData) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *FormData) Scan(value interface{}) error {
	if value == nil {
		*d = FormData{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("incompatible type for FormData")
	}
}

// FormSchema is a named, ordered sequence of field descriptors.
type FormSchema struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Fields    FieldList `json:"fields"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs validation on the schema fields. An empty field list is
// accepted: an admin may publish an empty form.
func (f *FormSchema) Validate() error {
	if f.Title == "" {
		return NewValidationError("form title is required")
	}
	if len(f.Title) > 255 {
		return NewValidationError("form title length must be between 1 and 255")
	}
	for i := range f.Fields {
		if err := f.Fields[i].Validate(); err != nil {
			return fmt.Errorf("invalid field %d: %w", i, err)
		}
	}
	return nil
}

// DuplicateLabels returns labels that appear more than once. Duplicates are
// not rejected, but later fields silently overwrite earlier values during
// assembly, so callers may want to warn.
func (f *FormSchema) DuplicateLabels() []string {
	seen := make(map[string]int, len(f.Fields))
	var dups []string
	for _, field := range f.Fields {
		seen[field.Label]++
		if seen[field.Label] == 2 {
			dups = append(dups, field.Label)
		}
	}
	return dups
}

// FormSummary is a schema plus its current number of submissions.
type FormSummary struct {
	FormSchema
	SubmissionCount int `json:"submission_count"`
}

// Submission is one respondent's completed form instance.
//
// FormTitle is a denormalized copy taken at submission time and is not kept
// in sync with later schema edits.
type Submission struct {
	ID        string    `json:"id"`
	FormID    string    `json:"form_id"`
	FormTitle string    `json:"form_title"`
	FormData  FormData  `json:"form_data"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormView is a schema together with its rendered input surface.
type FormView struct {
	Form   *FormSchema  `json:"form"`
	Inputs []BoundInput `json:"inputs"`
}

// Request/Response types

type CreateFormRequest struct {
	Title  string            `json:"title"`
	Fields []FieldDescriptor `json:"fields"`
}

func (r *CreateFormRequest) Validate() error {
	if r.Title == "" {
		return NewValidationError("form title is required")
	}
	for i := range r.Fields {
		if err := r.Fields[i].Type.Validate(); err != nil {
			return fmt.Errorf("invalid field %d: %w", i, err)
		}
	}
	return nil
}

type UpdateFormRequest struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Fields []FieldDescriptor `json:"fields"`
}

func (r *UpdateFormRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("form id is required")
	}
	if r.Title == "" {
		return NewValidationError("form title is required")
	}
	for i := range r.Fields {
		if err := r.Fields[i].Type.Validate(); err != nil {
			return fmt.Errorf("invalid field %d: %w", i, err)
		}
	}
	return nil
}

type DeleteFormRequest struct {
	ID string `json:"id"`
}

func (r *DeleteFormRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("form id is required")
	}
	return nil
}

type GetFormRequest struct {
	ID string `json:"id"`
}

func (r *GetFormRequest) FromURLParams(queryParams url.Values) error {
	r.ID = queryParams.Get("id")
	if r.ID == "" {
		return NewValidationError("form id is required")
	}
	return nil
}

type ListSubmissionsRequest struct {
	FormID string `json:"form_id"`
	Search string `json:"search,omitempty"`
}

func (r *ListSubmissionsRequest) FromURLParams(queryParams url.Values) error {
	r.FormID = queryParams.Get("form_id")
	r.Search = queryParams.Get("search")
	if r.FormID == "" {
		return NewValidationError("form_id is required")
	}
	return nil
}

type SubmitFormRequest struct {
	FormID string    `json:"form_id"`
	Values RawValues `json:"values"`
}

func (r *SubmitFormRequest) Validate() error {
	if r.FormID == "" {
		return NewValidationError("form_id is required")
	}
	return nil
}

type UpdateSubmissionRequest struct {
	ID     string    `json:"id"`
	Values RawValues `json:"values"`
}

func (r *UpdateSubmissionRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("submission id is required")
	}
	return nil
}

type DeleteSubmissionRequest struct {
	ID string `json:"id"`
}

func (r *DeleteSubmissionRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("submission id is required")
	}
	return nil
}

// FirstNameLabel returns the first field, in schema order, whose label
// contains "nome" case-insensitively, or "" if none match.
func FirstNameLabel(fields []FieldDescriptor) string {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field.Label), "nome") {
			return field.Label
		}
	}
	return ""
}

// FormService provides operations for managing registration forms and
// their submissions
type FormService interface {
	// CreateForm creates a new form schema
	CreateForm(ctx context.Context, title string, fields []FieldDescriptor) (*FormSchema, error)

	// GetFormByID retrieves a form by ID
	GetFormByID(ctx context.Context, id string) (*FormSchema, error)

	// ListForms retrieves all forms with submission counts, newest first
	ListForms(ctx context.Context) ([]*FormSummary, error)

	// UpdateForm replaces the title and field list of an existing form
	UpdateForm(ctx context.Context, id, title string, fields []FieldDescriptor) (*FormSchema, error)

	// DeleteForm deletes a form and all of its submissions
	DeleteForm(ctx context.Context, id string) error

	// RenderForm builds the public input surface for a form
	RenderForm(ctx context.Context, id string) (*FormView, error)

	// SubmitForm assembles raw input values into a submission and stores it
	SubmitForm(ctx context.Context, formID string, values RawValues) (*Submission, error)

	// ListSubmissions retrieves a form's submissions, oldest first
	ListSubmissions(ctx context.Context, formID string) ([]*Submission, error)

	// SearchSubmissions filters a form's submissions by name or value
	SearchSubmissions(ctx context.Context, formID, term string) ([]*Submission, error)

	// RenderSubmissionForEdit builds the input surface pre-populated with an
	// existing submission's values
	RenderSubmissionForEdit(ctx context.Context, submissionID string) (*FormView, error)

	// UpdateSubmission re-assembles and replaces a submission's values
	UpdateSubmission(ctx context.Context, submissionID string, values RawValues) (*Submission, error)

	// DeleteSubmission deletes a single submission
	DeleteSubmission(ctx context.Context, id string) error
}

type FormRepository interface {
	// CreateForm creates a new form schema in the database
	CreateForm(ctx context.Context, form *FormSchema) error

	// GetFormByID retrieves a form by its ID
	GetFormByID(ctx context.Context, id string) (*FormSchema, error)

	// ListForms retrieves all forms with submission counts, newest first
	ListForms(ctx context.Context) ([]*FormSummary, error)

	// UpdateForm replaces an existing form
	UpdateForm(ctx context.Context, form *FormSchema) error

	// DeleteForm deletes a form's submissions first, then the form itself.
	// The form row is never removed before its submissions.
	DeleteForm(ctx context.Context, id string) error

	// CreateSubmission stores a new submission
	CreateSubmission(ctx context.Context, submission *Submission) error

	// GetSubmissionByID retrieves a submission by its ID
	GetSubmissionByID(ctx context.Context, id string) (*Submission, error)

	// ListSubmissions retrieves a form's submissions, oldest first
	ListSubmissions(ctx context.Context, formID string) ([]*Submission, error)

	// UpdateSubmission replaces a submission's values and display name
	UpdateSubmission(ctx context.Context, submission *Submission) error

	// DeleteSubmission deletes a single submission
	DeleteSubmission(ctx context.Context, id string) error
}

// ErrFormNotFound is returned when a form is not found
type ErrFormNotFound struct {
	Message string
}

func (e *ErrFormNotFound) Error() string {
	return e.Message
}

// ErrSubmissionNotFound is returned when a submission is not found
type ErrSubmissionNotFound struct {
	Message string
}

func (e *ErrSubmissionNotFound) Error() string {
	return e.Message
}
