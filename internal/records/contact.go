// Package records содержит сетевые представления записей хранилища: контакты и категории
// с суффиксными именами полей, конверты запросов/ответов и общие правила валидации.
package records

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"ContactHub/internal/query"
)

// Имена полей коллекции contacts.
const (
	FieldID          = "Id"
	FieldName        = "Name"
	FieldFirstName   = "firstName_c"
	FieldLastName    = "lastName_c"
	FieldEmail       = "email_c"
	FieldPhone       = "phone_c"
	FieldCompany     = "company_c"
	FieldPosition    = "position_c"
	FieldCategory    = "category_c"
	FieldNotes       = "notes_c"
	FieldIsFavorite  = "isFavorite_c"
	FieldAttachments = "attachments_c"
	FieldCreatedOn   = "CreatedOn"
	FieldModifiedOn  = "ModifiedOn"
)

// Attachment — ссылка на прикреплённый файл.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Contact — полная запись контакта в том виде, в котором её отдаёт хранилище.
type Contact struct {
	ID          int64        `json:"Id"`
	Name        string       `json:"Name"`
	FirstName   string       `json:"firstName_c"`
	LastName    string       `json:"lastName_c"`
	Email       string       `json:"email_c"`
	Phone       string       `json:"phone_c"`
	Company     string       `json:"company_c"`
	Position    string       `json:"position_c"`
	Category    string       `json:"category_c"`
	Notes       string       `json:"notes_c"`
	IsFavorite  bool         `json:"isFavorite_c"`
	Attachments []Attachment `json:"attachments_c"`
	CreatedOn   time.Time    `json:"CreatedOn"`
	ModifiedOn  time.Time    `json:"ModifiedOn"`
}

// ContactFields — частичная запись для create/update. Отсутствующее поле (nil) не передаётся
// и не перезаписывается; ID задаётся только при обновлении.
type ContactFields struct {
	ID          *int64        `json:"Id,omitempty"`
	Name        *string       `json:"Name,omitempty"`
	FirstName   *string       `json:"firstName_c,omitempty"`
	LastName    *string       `json:"lastName_c,omitempty"`
	Email       *string       `json:"email_c,omitempty"`
	Phone       *string       `json:"phone_c,omitempty"`
	Company     *string       `json:"company_c,omitempty"`
	Position    *string       `json:"position_c,omitempty"`
	Category    *string       `json:"category_c,omitempty"`
	Notes       *string       `json:"notes_c,omitempty"`
	IsFavorite  *bool         `json:"isFavorite_c,omitempty"`
	Attachments *[]Attachment `json:"attachments_c,omitempty"`
}

// Apply переносит заданные поля на запись. Имя пересчитывается из имени и фамилии,
// если менялась хотя бы одна из частей.
func (f ContactFields) Apply(c *Contact) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Name, f.Name)
	set(&c.FirstName, f.FirstName)
	set(&c.LastName, f.LastName)
	set(&c.Email, f.Email)
	set(&c.Phone, f.Phone)
	set(&c.Company, f.Company)
	set(&c.Position, f.Position)
	set(&c.Category, f.Category)
	set(&c.Notes, f.Notes)
	if f.IsFavorite != nil {
		c.IsFavorite = *f.IsFavorite
	}
	if f.Attachments != nil {
		c.Attachments = append([]Attachment{}, (*f.Attachments)...)
	}
	if f.FirstName != nil || f.LastName != nil {
		c.Name = DisplayName(c.FirstName, c.LastName)
	}
	if c.Attachments == nil {
		c.Attachments = []Attachment{}
	}
}

// DisplayName собирает отображаемое имя из непустых частей.
func DisplayName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// FieldError — ошибка валидации конкретного поля.
type FieldError struct {
	FieldLabel string `json:"fieldLabel"`
	Message    string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.FieldLabel, e.Message)
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail проверяет форму local@domain.tld.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

const (
	maxTextLen  = 255
	maxNotesLen = 4000
)

// ValidateContact проверяет частичную запись. При создании контакту нужно имя или email.
func ValidateContact(f ContactFields, create bool) []FieldError {
	var errs []FieldError
	text := []struct {
		label string
		value *string
	}{
		{FieldName, f.Name}, {FieldFirstName, f.FirstName}, {FieldLastName, f.LastName},
		{FieldEmail, f.Email}, {FieldPhone, f.Phone}, {FieldCompany, f.Company},
		{FieldPosition, f.Position}, {FieldCategory, f.Category},
	}
	for _, t := range text {
		if t.value != nil && utf8.RuneCountInString(*t.value) > maxTextLen {
			errs = append(errs, FieldError{FieldLabel: t.label, Message: fmt.Sprintf("must be at most %d characters", maxTextLen)})
		}
	}
	if f.Notes != nil && utf8.RuneCountInString(*f.Notes) > maxNotesLen {
		errs = append(errs, FieldError{FieldLabel: FieldNotes, Message: fmt.Sprintf("must be at most %d characters", maxNotesLen)})
	}
	if f.Email != nil && *f.Email != "" && !ValidEmail(*f.Email) {
		errs = append(errs, FieldError{FieldLabel: FieldEmail, Message: "invalid email address"})
	}
	if create {
		name := ""
		if f.Name != nil {
			name = *f.Name
		}
		if name == "" {
			name = DisplayName(deref(f.FirstName), deref(f.LastName))
		}
		if name == "" && deref(f.Email) == "" {
			errs = append(errs, FieldError{FieldLabel: FieldName, Message: "name or email is required"})
		}
	}
	return errs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ContactSchema описывает поля контакта для языка запросов.
var ContactSchema = query.NewSchema(func(c *Contact) int64 { return c.ID },
	query.Field[Contact]{Name: FieldID, Column: "id", Kind: query.Int, Value: func(c *Contact) any { return c.ID }},
	query.Field[Contact]{Name: FieldName, Column: "name", Kind: query.Text, Value: func(c *Contact) any { return c.Name }},
	query.Field[Contact]{Name: FieldFirstName, Column: "first_name", Kind: query.Text, Value: func(c *Contact) any { return c.FirstName }},
	query.Field[Contact]{Name: FieldLastName, Column: "last_name", Kind: query.Text, Value: func(c *Contact) any { return c.LastName }},
	query.Field[Contact]{Name: FieldEmail, Column: "email", Kind: query.Text, Value: func(c *Contact) any { return c.Email }},
	query.Field[Contact]{Name: FieldPhone, Column: "phone", Kind: query.Text, Value: func(c *Contact) any { return c.Phone }},
	query.Field[Contact]{Name: FieldCompany, Column: "company", Kind: query.Text, Value: func(c *Contact) any { return c.Company }},
	query.Field[Contact]{Name: FieldPosition, Column: "position", Kind: query.Text, Value: func(c *Contact) any { return c.Position }},
	query.Field[Contact]{Name: FieldCategory, Column: "category", Kind: query.Text, Value: func(c *Contact) any { return c.Category }},
	query.Field[Contact]{Name: FieldNotes, Column: "notes", Kind: query.Text, Value: func(c *Contact) any { return c.Notes }},
	query.Field[Contact]{Name: FieldIsFavorite, Column: "is_favorite", Kind: query.Bool, Value: func(c *Contact) any { return c.IsFavorite }},
	query.Field[Contact]{Name: FieldAttachments, Column: "attachments", Kind: query.List, Value: func(c *Contact) any { return c.Attachments }},
	query.Field[Contact]{Name: FieldCreatedOn, Column: "created_at", Kind: query.Time, Value: func(c *Contact) any { return c.CreatedOn }},
	query.Field[Contact]{Name: FieldModifiedOn, Column: "updated_at", Kind: query.Time, Value: func(c *Contact) any { return c.ModifiedOn }},
)

// ContactFieldNames — все поля контакта, запрашиваемые клиентом.
var ContactFieldNames = ContactSchema.Names()
