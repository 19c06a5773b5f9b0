package service

import (
	"ContactHub/internal/model"
	"ContactHub/internal/query"
	"ContactHub/internal/records"
	"ContactHub/internal/repo"
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// CategoryService — операции над общими категориями. Чтение по id кешируется.
type CategoryService struct {
	repo   repo.CategoryRepository
	cache  *expirable.LRU[int64, records.Category]
	logger *zap.SugaredLogger
}

func NewCategoryService(r repo.CategoryRepository, cacheSize int, ttl time.Duration, logger *zap.SugaredLogger) *CategoryService {
	return &CategoryService{
		repo:   r,
		cache:  expirable.NewLRU[int64, records.Category](cacheSize, nil, ttl),
		logger: logger,
	}
}

func (s *CategoryService) Fetch(ctx context.Context, q query.Query) ([]records.Category, error) {
	list, err := s.repo.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]records.Category, 0, len(list))
	for i := range list {
		out = append(out, list[i].Record())
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*records.Category, error) {
	if c, ok := s.cache.Get(id); ok {
		return &c, nil
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	rec := m.Record()
	s.cache.Add(id, rec)
	return &rec, nil
}

// Create создаёт пакет категорий. Имя категории уникально без учёта регистра.
func (s *CategoryService) Create(ctx context.Context, batch []records.CategoryFields) []records.Result[records.Category] {
	results := make([]records.Result[records.Category], 0, len(batch))
	for _, f := range batch {
		if errs := records.ValidateCategory(f); len(errs) > 0 {
			results = append(results, records.Invalid[records.Category](errs))
			continue
		}
		rec, err := s.create(ctx, f)
		if err != nil {
			s.logger.Warnw("create category failed", "name", *f.Name, "error", err)
			results = append(results, records.Result[records.Category]{Message: err.Error()})
			continue
		}
		results = append(results, records.Result[records.Category]{Success: true, Data: rec})
	}
	return results
}

func (s *CategoryService) create(ctx context.Context, f records.CategoryFields) (*records.Category, error) {
	existing, err := s.repo.Query(ctx, query.New().Filter(query.Eq(records.FieldName, *f.Name)))
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("category %q already exists", *f.Name)
	}
	m := &model.Category{Name: *f.Name}
	if f.Color != nil {
		m.Color = *f.Color
	}
	if f.Icon != nil {
		m.Icon = *f.Icon
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	rec := m.Record()
	return &rec, nil
}

// Seed заполняет пустую коллекцию категорий. Возвращает число созданных записей.
func (s *CategoryService) Seed(ctx context.Context, seed []records.Category) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	created := 0
	for _, c := range seed {
		if err := s.repo.Create(ctx, &model.Category{Name: c.Name, Color: c.Color, Icon: c.Icon}); err != nil {
			return created, fmt.Errorf("seed category %q: %w", c.Name, err)
		}
		created++
	}
	return created, nil
}
