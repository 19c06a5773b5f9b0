package repo

import (
	"ContactHub/internal/model"
	"ContactHub/internal/query"
	"ContactHub/internal/records"
	"context"

	"gorm.io/gorm"
)

// CategoryRepository — доступ к общим категориям.
type CategoryRepository interface {
	Query(ctx context.Context, q query.Query) ([]model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
	Count(ctx context.Context) (int64, error)
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория категорий.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Query(ctx context.Context, q query.Query) ([]model.Category, error) {
	tx, err := applyQuery(r.db.WithContext(ctx).Model(&model.Category{}), records.CategorySchema, q)
	if err != nil {
		return nil, err
	}
	var out []model.Category
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&n).Error
	return n, err
}
