package model

import (
	"time"

	"ContactHub/internal/records"
)

// Category — общая для всех пользователей категория контактов.
type Category struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null;uniqueIndex"`
	Color     string
	Icon      string
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Record переводит модель в сетевую запись.
func (c *Category) Record() records.Category {
	return records.Category{
		ID:         c.ID,
		Name:       c.Name,
		Color:      c.Color,
		Icon:       c.Icon,
		CreatedOn:  c.CreatedAt.UTC(),
		ModifiedOn: c.UpdatedAt.UTC(),
	}
}
