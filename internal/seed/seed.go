// Package seed содержит стартовые коллекции контактов и категорий.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"ContactHub/internal/records"
)

//go:embed data/contacts.json
var contactsJSON []byte

//go:embed data/categories.json
var categoriesJSON []byte

// Contacts возвращает стартовый набор контактов (новый срез на каждый вызов).
func Contacts() ([]records.Contact, error) {
	var out []records.Contact
	if err := json.Unmarshal(contactsJSON, &out); err != nil {
		return nil, fmt.Errorf("seed contacts: %w", err)
	}
	return out, nil
}

// Categories возвращает стартовый набор категорий.
func Categories() ([]records.Category, error) {
	var out []records.Category
	if err := json.Unmarshal(categoriesJSON, &out); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	return out, nil
}
