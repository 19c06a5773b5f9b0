package sqlite

import (
	"ContactHub/internal/cli/repo"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"time"

	_ "embed"

	_ "modernc.org/sqlite"
)

// kvSchema — таблица слотов; контакты и категории лежат в ней JSON-снимками.
//
//go:embed migrations/001_init.sql
var kvSchema string

// KVStore — слот ключ/значение в локальной БД SQLite пользователя.
type KVStore struct {
	db    *sql.DB
	login string
}

var _ repo.KVSlot = (*KVStore)(nil)

var loginRe = regexp.MustCompile(`^[A-Za-z0-9._@-]+$`)

// OpenForUser открывает (и создаёт при необходимости) файл БД для указанного логина
// в каталоге base. Вторым значением возвращается путь к БД.
func OpenForUser(base, login string) (*KVStore, string, error) {
	if login == "" {
		return nil, "", errors.New("empty login for user store")
	}
	if !loginRe.MatchString(login) {
		return nil, "", errors.New("login is not safe for a directory name")
	}
	if base == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", err
		}
		base = filepath.Join(cfgDir, "ContactHub", "users")
	}
	dir := filepath.Join(base, login)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "client.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &KVStore{db: db, login: login}, dbPath, nil
}

// Close закрывает соединение с БД.
func (s *KVStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц.
func (s *KVStore) Migrate() error {
	_, err := s.db.Exec(kvSchema)
	return err
}

// Get читает значение по ключу. ok=false, если ключа нет.
func (s *KVStore) Get(key string) ([]byte, bool, error) {
	var v []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Put записывает значение, заменяя предыдущее.
func (s *KVStore) Put(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	return err
}
