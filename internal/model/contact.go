package model

import (
	"time"

	"ContactHub/internal/records"
)

// Contact — серверная модель контакта пользователя.
type Contact struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	UserID int64 `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name      string
	FirstName string `gorm:"index"`
	LastName  string
	Email     string
	Phone     string
	Company   string
	Position  string
	Category  string `gorm:"index"`
	Notes     string

	IsFavorite  bool                 `gorm:"not null;default:false"`
	Attachments []records.Attachment `gorm:"serializer:json"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Record переводит модель в сетевую запись.
func (c *Contact) Record() records.Contact {
	att := c.Attachments
	if att == nil {
		att = []records.Attachment{}
	}
	return records.Contact{
		ID:          c.ID,
		Name:        c.Name,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.Company,
		Position:    c.Position,
		Category:    c.Category,
		Notes:       c.Notes,
		IsFavorite:  c.IsFavorite,
		Attachments: att,
		CreatedOn:   c.CreatedAt.UTC(),
		ModifiedOn:  c.UpdatedAt.UTC(),
	}
}

// ApplyRecord переносит содержимое сетевой записи в модель (без идентификатора и времени).
func (c *Contact) ApplyRecord(r records.Contact) {
	c.Name = r.Name
	c.FirstName = r.FirstName
	c.LastName = r.LastName
	c.Email = r.Email
	c.Phone = r.Phone
	c.Company = r.Company
	c.Position = r.Position
	c.Category = r.Category
	c.Notes = r.Notes
	c.IsFavorite = r.IsFavorite
	c.Attachments = r.Attachments
}
