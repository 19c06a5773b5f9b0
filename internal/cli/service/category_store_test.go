package service

import (
	"context"
	"errors"
	"testing"

	"ContactHub/internal/cli/repo/local"
	"ContactHub/internal/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryStore_LocalBackend(t *testing.T) {
	ctx := context.Background()
	s := NewCategoryStore(local.NewStore(nil, nil), nil, nil)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Name, all[i].Name)
	}

	c, err := s.GetByName(ctx, "  work ")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Work", c.Name)

	byID, err := s.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, byID)

	missing, err := s.GetByName(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
	missing, err = s.GetByName(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryStore_Failures(t *testing.T) {
	ctx := context.Background()
	_, err := NewCategoryStore(nil, nil, nil).GetAll(ctx)
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	b := &mockCategoryBackend{}
	b.On("FetchCategories", mock.Anything, mock.Anything).Return(nil, errors.New("down"))
	b.On("GetCategory", mock.Anything, int64(1)).Return(nil, errors.New("down"))
	n := &recNotifier{}
	s := NewCategoryStore(b, n, nil)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	c, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Len(t, n.errors, 2)
}

func TestCategoryStore_GetByIDNotFound(t *testing.T) {
	b := &mockCategoryBackend{}
	b.On("GetCategory", mock.Anything, int64(7)).Return((*records.Category)(nil), nil)
	c, err := NewCategoryStore(b, nil, nil).GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, c)
}
