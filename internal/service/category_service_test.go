package service

import (
	"ContactHub/internal/model"
	"ContactHub/internal/records"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCategoryService_GetIsCached(t *testing.T) {
	m := new(mockCategoryRepo)
	svc := NewCategoryService(m, 8, time.Minute, zap.NewNop().Sugar())
	m.On("GetByID", mock.Anything, int64(2)).Return(&model.Category{ID: 2, Name: "Work"}, nil).Once()

	for range 3 {
		c, err := svc.Get(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, "Work", c.Name)
	}
	m.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestCategoryService_Create(t *testing.T) {
	m := new(mockCategoryRepo)
	svc := NewCategoryService(m, 8, time.Minute, zap.NewNop().Sugar())
	ctx := context.Background()

	m.On("Query", mock.Anything, mock.Anything).Return([]model.Category{{ID: 1, Name: "Work"}}, nil).Once()
	m.On("Query", mock.Anything, mock.Anything).Return([]model.Category{}, nil).Once()
	m.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "Gym" && c.Color == "#f00"
	})).Return(nil).Once()

	res := svc.Create(ctx, []records.CategoryFields{
		{Name: records.Ptr("work")},
		{Name: records.Ptr("Gym"), Color: records.Ptr("#f00")},
		{Color: records.Ptr("#000")},
	})
	require.Len(t, res, 3)
	assert.False(t, res[0].Success)
	assert.Contains(t, res[0].Message, "already exists")
	assert.True(t, res[1].Success)
	assert.Equal(t, "Gym", res[1].Data.Name)
	assert.False(t, res[2].Success)
	m.AssertExpectations(t)
}

func TestCategoryService_Seed(t *testing.T) {
	ctx := context.Background()
	seed := []records.Category{{Name: "Work"}, {Name: "Family"}}

	t.Run("empty collection is seeded", func(t *testing.T) {
		m := new(mockCategoryRepo)
		svc := NewCategoryService(m, 8, time.Minute, zap.NewNop().Sugar())
		m.On("Count", mock.Anything).Return(int64(0), nil).Once()
		m.On("Create", mock.Anything, mock.Anything).Return(nil).Twice()

		n, err := svc.Seed(ctx, seed)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		m.AssertExpectations(t)
	})

	t.Run("existing collection is left alone", func(t *testing.T) {
		m := new(mockCategoryRepo)
		svc := NewCategoryService(m, 8, time.Minute, zap.NewNop().Sugar())
		m.On("Count", mock.Anything).Return(int64(3), nil).Once()

		n, err := svc.Seed(ctx, seed)
		require.NoError(t, err)
		assert.Zero(t, n)
		m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
