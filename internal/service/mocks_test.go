package service

import (
	"ContactHub/internal/model"
	"ContactHub/internal/query"
	"ContactHub/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

type mockContactRepo struct{ mock.Mock }

func (m *mockContactRepo) Query(ctx context.Context, userID int64, q query.Query) ([]model.Contact, error) {
	args := m.Called(ctx, userID, q)
	if v, ok := args.Get(0).([]model.Contact); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContactRepo) GetByID(ctx context.Context, userID, id int64) (*model.Contact, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Contact); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContactRepo) Create(ctx context.Context, c *model.Contact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContactRepo) Update(ctx context.Context, userID, id int64, apply func(*model.Contact) error) (*model.Contact, error) {
	args := m.Called(ctx, userID, id, apply)
	if v, ok := args.Get(0).(*model.Contact); ok {
		if err := apply(v); err != nil {
			return nil, err
		}
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContactRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *mockContactRepo) ToggleFavorite(ctx context.Context, userID, id int64) (*model.Contact, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Contact); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ContactRepository = (*mockContactRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Query(ctx context.Context, q query.Query) ([]model.Category, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).([]model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)
