package view

import (
	"bytes"
	"testing"

	"ContactHub/internal/cli/model"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	c := model.Contact{ID: 3, Name: "Ann Lee", Email: "a@b.co", Category: "Work", IsFavorite: true}
	assert.Equal(t, "*    3  Ann Lee [Work]  a@b.co", Line(c))
}

func TestList_Empty(t *testing.T) {
	var buf bytes.Buffer
	List(&buf, nil)
	assert.Equal(t, "No contacts\n", buf.String())
}

func TestStats_OrdersByCount(t *testing.T) {
	var buf bytes.Buffer
	Stats(&buf, model.Stats{Total: 3, Favorites: 1, ByCategory: map[string]int{"Work": 1, "Family": 2}})
	out := buf.String()
	assert.Less(t, bytes.Index([]byte(out), []byte("Family")), bytes.Index([]byte(out), []byte("Work")))
}
