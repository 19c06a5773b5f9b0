package viewmodel

import (
	"context"
	"errors"
	"slices"
	"sync"

	"ContactHub/internal/cli/model"
	"ContactHub/internal/cli/service"
)

// CategoryStore — чтение категорий.
type CategoryStore interface {
	GetAll(ctx context.Context) ([]model.Category, error)
}

var _ CategoryStore = (*service.CategoryStore)(nil)

// CategoriesState — снимок состояния категорий.
type CategoriesState struct {
	Categories []model.Category
	Loading    bool
	Error      string
}

// Categories — список категорий сессии.
type Categories struct {
	store    CategoryStore
	notifier service.Notifier

	mu    sync.Mutex
	state CategoriesState
}

func NewCategories(store CategoryStore, notifier service.Notifier) *Categories {
	return &Categories{store: store, notifier: notifier, state: CategoriesState{Categories: []model.Category{}}}
}

func (c *Categories) State() CategoriesState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Categories = slices.Clone(st.Categories)
	return st
}

// Load перечитывает категории. При ошибке прежний список сохраняется.
func (c *Categories) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state.Loading = true
	c.mu.Unlock()

	list, err := c.store.GetAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false
	if err != nil {
		c.state.Error = err.Error()
		if errors.Is(err, service.ErrBackendUnavailable) && c.notifier != nil {
			c.notifier.Error(err.Error())
		}
		return err
	}
	c.state.Categories = list
	c.state.Error = ""
	return nil
}
