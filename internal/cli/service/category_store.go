package service

import (
	"context"
	"fmt"
	"strings"

	"ContactHub/internal/cli/model"
	"ContactHub/internal/cli/repo"
	"ContactHub/internal/query"
	"ContactHub/internal/records"

	"go.uber.org/zap"
)

// CategoryStore — клиент коллекции категорий. Политика ошибок та же, что у ContactStore.
type CategoryStore struct {
	backend  repo.CategoryBackend
	notifier Notifier
	logger   *zap.SugaredLogger
}

func NewCategoryStore(backend repo.CategoryBackend, notifier Notifier, logger *zap.SugaredLogger) *CategoryStore {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CategoryStore{backend: backend, notifier: notifier, logger: logger}
}

func (s *CategoryStore) report(op string, err error) {
	s.logger.Errorw("category store: "+op+" failed", "error", err)
	s.notifier.Error(fmt.Sprintf("Failed to %s: %v", op, err))
}

func (s *CategoryStore) fetch(ctx context.Context, q query.Query) ([]model.Category, error) {
	if s.backend == nil {
		return nil, ErrBackendUnavailable
	}
	list, err := s.backend.FetchCategories(ctx, q.Sorted(query.AscBy(records.FieldName)))
	if err != nil {
		s.report("load categories", classify(err))
		return []model.Category{}, nil
	}
	out := make([]model.Category, 0, len(list))
	for _, r := range list {
		out = append(out, toCategory(r))
	}
	return out, nil
}

// GetAll возвращает категории по алфавиту.
func (s *CategoryStore) GetAll(ctx context.Context) ([]model.Category, error) {
	return s.fetch(ctx, query.New(records.CategoryFieldNames...))
}

// GetByID возвращает категорию или nil.
func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	if s.backend == nil {
		return nil, ErrBackendUnavailable
	}
	r, err := s.backend.GetCategory(ctx, id)
	if err != nil {
		s.report("load category", classify(err))
		return nil, nil
	}
	if r == nil {
		return nil, nil
	}
	c := toCategory(*r)
	return &c, nil
}

// GetByName ищет категорию по имени без учёта регистра.
func (s *CategoryStore) GetByName(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	list, err := s.fetch(ctx, query.New(records.CategoryFieldNames...).Filter(query.Eq(records.FieldName, name)))
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}
