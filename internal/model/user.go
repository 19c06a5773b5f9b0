package model

import "time"

// User — учётная запись владельца контактов.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Login     string    `gorm:"not null;uniqueIndex"`
	Password  string    `gorm:"not null"` // bcrypt-хеш
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
