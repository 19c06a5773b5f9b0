package service

import (
	"context"
	"sync"

	"ContactHub/internal/cli/repo"
	"ContactHub/internal/query"
	"ContactHub/internal/records"

	"github.com/stretchr/testify/mock"
)

// mockBackend — порт контактов без атомарного ToggleFavorite.
type mockBackend struct{ mock.Mock }

var _ repo.ContactBackend = (*mockBackend)(nil)

func (m *mockBackend) FetchContacts(ctx context.Context, q query.Query) ([]records.Contact, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).([]records.Contact); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBackend) GetContact(ctx context.Context, id int64) (*records.Contact, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*records.Contact); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBackend) CreateContacts(ctx context.Context, batch []records.ContactFields) ([]records.Result[records.Contact], error) {
	args := m.Called(ctx, batch)
	if v, ok := args.Get(0).([]records.Result[records.Contact]); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBackend) UpdateContacts(ctx context.Context, batch []records.ContactFields) ([]records.Result[records.Contact], error) {
	args := m.Called(ctx, batch)
	if v, ok := args.Get(0).([]records.Result[records.Contact]); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBackend) DeleteContacts(ctx context.Context, ids []int64) ([]records.Result[records.Deleted], error) {
	args := m.Called(ctx, ids)
	if v, ok := args.Get(0).([]records.Result[records.Deleted]); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCategoryBackend struct{ mock.Mock }

var _ repo.CategoryBackend = (*mockCategoryBackend)(nil)

func (m *mockCategoryBackend) FetchCategories(ctx context.Context, q query.Query) ([]records.Category, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).([]records.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryBackend) GetCategory(ctx context.Context, id int64) (*records.Category, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*records.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// recNotifier запоминает уведомления.
type recNotifier struct {
	mu      sync.Mutex
	success []string
	errors  []string
}

func (n *recNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.success = append(n.success, msg)
}

func (n *recNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

// plainBackend скрывает у хранилища атомарный ToggleFavorite.
type plainBackend struct{ repo.ContactBackend }
