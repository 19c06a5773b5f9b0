package repo

import (
	"ContactHub/internal/model"
	"ContactHub/internal/query"
	"ContactHub/internal/records"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategoryRepository(t *testing.T) {
	db := newTestDB(t)
	r := NewCategoryRepository(db)
	ctx := context.Background()

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, name := range []string{"Work", "family", "Clients"} {
		require.NoError(t, r.Create(ctx, &model.Category{Name: name, Color: "#000"}))
	}
	// имя уникально
	assert.Error(t, r.Create(ctx, &model.Category{Name: "Work"}))

	n, err = r.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	got, err := r.Query(ctx, query.New().Sorted(query.AscBy(records.FieldName)))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Clients", "family", "Work"}, []string{got[0].Name, got[1].Name, got[2].Name})

	c, err := r.GetByID(ctx, got[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Clients", c.Name)

	_, err = r.GetByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
