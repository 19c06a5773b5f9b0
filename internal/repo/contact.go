package repo

import (
	"ContactHub/internal/model"
	"ContactHub/internal/query"
	"ContactHub/internal/records"
	"context"
	"time"

	"gorm.io/gorm"
)

// ContactRepository — доступ к контактам пользователя. Все методы ограничены userID;
// отсутствие записи сообщается через gorm.ErrRecordNotFound.
type ContactRepository interface {
	// Query выбирает контакты по запросу на языке query.
	Query(ctx context.Context, userID int64, q query.Query) ([]model.Contact, error)
	GetByID(ctx context.Context, userID, id int64) (*model.Contact, error)
	Create(ctx context.Context, c *model.Contact) error
	// Update читает запись, применяет apply и сохраняет её в одной транзакции.
	Update(ctx context.Context, userID, id int64, apply func(*model.Contact) error) (*model.Contact, error)
	Delete(ctx context.Context, userID, id int64) error
	// ToggleFavorite атомарно инвертирует флаг избранного одним UPDATE.
	ToggleFavorite(ctx context.Context, userID, id int64) (*model.Contact, error)
}

type contactRepo struct {
	db *gorm.DB
}

// NewContactRepository создаёт реализацию репозитория контактов.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Query(ctx context.Context, userID int64, q query.Query) ([]model.Contact, error) {
	tx := r.db.WithContext(ctx).Model(&model.Contact{}).Where("user_id = ?", userID)
	tx, err := applyQuery(tx, records.ContactSchema, q)
	if err != nil {
		return nil, err
	}
	var out []model.Contact
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contactRepo) GetByID(ctx context.Context, userID, id int64) (*model.Contact, error) {
	var c model.Contact
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) Create(ctx context.Context, c *model.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepo) Update(ctx context.Context, userID, id int64, apply func(*model.Contact) error) (*model.Contact, error) {
	var c model.Contact
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
			return err
		}
		if err := apply(&c); err != nil {
			return err
		}
		c.ID, c.UserID = id, userID
		return tx.Save(&c).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) Delete(ctx context.Context, userID, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Contact{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactRepo) ToggleFavorite(ctx context.Context, userID, id int64) (*model.Contact, error) {
	tx := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"is_favorite": gorm.Expr("NOT is_favorite"),
			"updated_at":  time.Now().UTC(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, userID, id)
}
