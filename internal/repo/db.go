package repo

import (
	"ContactHub/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DefaultDSN — файл SQLite, используемый при пустой строке подключения.
const DefaultDSN = "file:contacthub.db?_pragma=foreign_keys(1)"

// InitDB открывает БД по строке подключения и применяет миграции моделей.
// Строки вида postgres://... или host=... обслуживает драйвер PostgreSQL, остальные — SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(Dialector(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Dialector выбирает драйвер gorm по строке подключения.
func Dialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	if dsn == "" {
		dsn = DefaultDSN
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

// Migrate создаёт таблицы и индексы для всех моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Contact{}, &model.Category{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
