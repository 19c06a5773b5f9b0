package repo

import (
	"database/sql/driver"
	"strings"

	"gorm.io/gorm"
	"modernc.org/sqlite"
)

// foldFunc — SQL-функция приведения к нижнему регистру с учётом Unicode.
// Встроенный LOWER в SQLite складывает только ASCII, а сравнение текста
// в запросах должно совпадать с query.Normalize.
const foldFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// foldExpr оборачивает текстовую колонку в регистронезависимую форму для диалекта db.
// LOWER в PostgreSQL учитывает Unicode.
func foldExpr(db *gorm.DB, col string) string {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return "LOWER(" + col + ")"
	}
	return foldFunc + "(" + col + ")"
}
