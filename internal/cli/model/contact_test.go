package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestContactInput_Validate(t *testing.T) {
	ok := ContactInput{FirstName: "A", LastName: "B", Email: "a@b.co", Phone: "1"}
	assert.Empty(t, ok.Validate())

	errs := ContactInput{Email: "a@b"}.Validate()
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["first"])
	assert.True(t, fields["last"])
	assert.True(t, fields["phone"])
	assert.True(t, fields["email"])
}

func TestValidatePatch(t *testing.T) {
	bad := "nope"
	empty := ""
	good := "x@y.io"
	assert.Len(t, ValidatePatch(ContactPatch{Email: &bad}), 1)
	assert.Empty(t, ValidatePatch(ContactPatch{Email: &empty}))
	assert.Empty(t, ValidatePatch(ContactPatch{Email: &good}))
	assert.True(t, ContactPatch{}.IsEmpty())
	assert.False(t, ContactPatch{Email: &good}.IsEmpty())
}

func TestNewAttachment(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "card.txt")
	require.NoError(t, os.WriteFile(p, []byte("hello"), 0o600))

	a, err := NewAttachment(p)
	require.NoError(t, err)
	assert.Equal(t, "card.txt", a.Name)
	assert.Equal(t, int64(5), a.Size)
	assert.Contains(t, a.Type, "text/plain")
	assert.NotEmpty(t, a.ID)

	_, err = NewAttachment(dir)
	assert.Error(t, err)
	_, err = NewAttachment(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestSortContacts(t *testing.T) {
	list := []Contact{
		{ID: 3, FirstName: "bob", LastName: "Jones"},
		{ID: 2, FirstName: "Alice", LastName: "smith"},
		{ID: 1, FirstName: "alice", LastName: "Smith"},
		{ID: 4, FirstName: "Alice", LastName: "Brown"},
	}
	SortContacts(list)
	ids := make([]int64, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{4, 1, 2, 3}, ids)
}
