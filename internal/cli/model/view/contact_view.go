// Package view форматирует записи клиента для вывода в терминал.
package view

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"ContactHub/internal/cli/model"
)

// Line — однострочное представление контакта в списке.
func Line(c model.Contact) string {
	star := " "
	if c.IsFavorite {
		star = "*"
	}
	var extra []string
	for _, s := range []string{c.Email, c.Phone, c.Company} {
		if s != "" {
			extra = append(extra, s)
		}
	}
	line := fmt.Sprintf("%s %4d  %s", star, c.ID, c.Name)
	if c.Category != "" {
		line += " [" + c.Category + "]"
	}
	if len(extra) > 0 {
		line += "  " + strings.Join(extra, " | ")
	}
	return line
}

// List печатает контакты по одному в строке и итог.
func List(w io.Writer, list []model.Contact) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No contacts")
		return
	}
	for _, c := range list {
		fmt.Fprintln(w, Line(c))
	}
	fmt.Fprintf(w, "Total: %d\n", len(list))
}

// Details печатает все поля контакта.
func Details(w io.Writer, c model.Contact) {
	rows := []struct{ label, value string }{
		{"id", fmt.Sprint(c.ID)},
		{"name", c.Name},
		{"first", c.FirstName},
		{"last", c.LastName},
		{"email", c.Email},
		{"phone", c.Phone},
		{"company", c.Company},
		{"position", c.Position},
		{"category", c.Category},
		{"notes", c.Notes},
		{"favorite", fmt.Sprint(c.IsFavorite)},
	}
	for _, r := range rows {
		if r.value != "" {
			fmt.Fprintf(w, "  %-9s %s\n", r.label+":", r.value)
		}
	}
	for _, a := range c.Attachments {
		fmt.Fprintf(w, "  %-9s %s (%d bytes, %s)\n", "file:", a.Name, a.Size, a.Type)
	}
	if !c.CreatedOn.IsZero() {
		fmt.Fprintf(w, "  %-9s %s\n", "created:", c.CreatedOn.Format("2006-01-02 15:04"))
	}
	if !c.ModifiedOn.IsZero() {
		fmt.Fprintf(w, "  %-9s %s\n", "modified:", c.ModifiedOn.Format("2006-01-02 15:04"))
	}
}

// Stats печатает агрегаты; категории упорядочены по убыванию числа контактов.
func Stats(w io.Writer, s model.Stats) {
	fmt.Fprintf(w, "Total:     %d\n", s.Total)
	fmt.Fprintf(w, "Favorites: %d\n", s.Favorites)
	names := make([]string, 0, len(s.ByCategory))
	for n := range s.ByCategory {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.ByCategory[names[i]] != s.ByCategory[names[j]] {
			return s.ByCategory[names[i]] > s.ByCategory[names[j]]
		}
		return names[i] < names[j]
	})
	for _, n := range names {
		fmt.Fprintf(w, "  %-16s %d\n", n, s.ByCategory[n])
	}
}
