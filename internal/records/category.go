package records

import (
	"time"

	"ContactHub/internal/query"
)

// Имена полей коллекции categories.
const (
	FieldColor = "color_c"
	FieldIcon  = "icon_c"
)

// Category — запись категории.
type Category struct {
	ID         int64     `json:"Id"`
	Name       string    `json:"Name"`
	Color      string    `json:"color_c,omitempty"`
	Icon       string    `json:"icon_c,omitempty"`
	CreatedOn  time.Time `json:"CreatedOn"`
	ModifiedOn time.Time `json:"ModifiedOn"`
}

// CategoryFields — частичная запись категории для create.
type CategoryFields struct {
	Name  *string `json:"Name,omitempty"`
	Color *string `json:"color_c,omitempty"`
	Icon  *string `json:"icon_c,omitempty"`
}

// ValidateCategory проверяет запись категории на создание.
func ValidateCategory(f CategoryFields) []FieldError {
	var errs []FieldError
	if f.Name == nil || *f.Name == "" {
		errs = append(errs, FieldError{FieldLabel: FieldName, Message: "name is required"})
	} else if len(*f.Name) > maxTextLen {
		errs = append(errs, FieldError{FieldLabel: FieldName, Message: "name is too long"})
	}
	return errs
}

// CategorySchema описывает поля категории для языка запросов.
var CategorySchema = query.NewSchema(func(c *Category) int64 { return c.ID },
	query.Field[Category]{Name: FieldID, Column: "id", Kind: query.Int, Value: func(c *Category) any { return c.ID }},
	query.Field[Category]{Name: FieldName, Column: "name", Kind: query.Text, Value: func(c *Category) any { return c.Name }},
	query.Field[Category]{Name: FieldColor, Column: "color", Kind: query.Text, Value: func(c *Category) any { return c.Color }},
	query.Field[Category]{Name: FieldIcon, Column: "icon", Kind: query.Text, Value: func(c *Category) any { return c.Icon }},
	query.Field[Category]{Name: FieldCreatedOn, Column: "created_at", Kind: query.Time, Value: func(c *Category) any { return c.CreatedOn }},
	query.Field[Category]{Name: FieldModifiedOn, Column: "updated_at", Kind: query.Time, Value: func(c *Category) any { return c.ModifiedOn }},
)

// CategoryFieldNames — все поля категории.
var CategoryFieldNames = CategorySchema.Names()
