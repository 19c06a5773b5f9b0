package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"ContactHub/internal/cli/repo"
)

// AuthFSStore — файловое хранилище токена и контекста пользователя для CLI.
// TokenFile переопределяет путь к файлу токена; по умолчанию он лежит в каталоге конфигурации.
type AuthFSStore struct {
	TokenFile string
}

var (
	_ repo.TokenStore       = AuthFSStore{}
	_ repo.UserContextStore = AuthFSStore{}
)

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "ContactHub")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func filePath(name string) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func (s AuthFSStore) tokenPath() (string, error) {
	if s.TokenFile == "" {
		return filePath("auth_token")
	}
	if err := os.MkdirAll(filepath.Dir(s.TokenFile), 0o700); err != nil {
		return "", err
	}
	return s.TokenFile, nil
}

func lastLoginPath() (string, error) { return filePath("last_login") }

func lastSyncAtPath(login string) (string, error) {
	if login == "" {
		return "", errors.New("empty login for last_sync_at")
	}
	// per-user, чтобы поддерживать несколько аккаунтов
	return filePath("last_sync_at_" + login)
}

// readTrimmed читает файл и обрезает завершающие пробелы и переводы строк.
func readTrimmed(p, emptyMsg string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	s := strings.TrimRight(string(b), " \t\r\n")
	if s == "" {
		return "", errors.New(emptyMsg)
	}
	return s, nil
}

// Save сохраняет auth‑токен в файл.
func (s AuthFSStore) Save(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает auth‑токен из файла.
func (s AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	return readTrimmed(p, "empty token file")
}

// SaveLogin сохраняет логин пользователя в файл.
func (AuthFSStore) SaveLogin(login string) error {
	if login == "" {
		return errors.New("empty login")
	}
	p, err := lastLoginPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(login), 0o600)
}

// LoadLogin читает логин пользователя из файла.
func (AuthFSStore) LoadLogin() (string, error) {
	p, err := lastLoginPath()
	if err != nil {
		return "", err
	}
	return readTrimmed(p, "no stored login")
}

// SaveLastSyncAt сохраняет время последней синхронизации (RFC3339) для пользователя.
func SaveLastSyncAt(login, ts string) error {
	if login == "" {
		return errors.New("empty login")
	}
	p, err := lastSyncAtPath(login)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(ts), 0o600)
}

// LoadLastSyncAt читает время последней синхронизации пользователя.
func LoadLastSyncAt(login string) (string, error) {
	if login == "" {
		return "", errors.New("empty login")
	}
	p, err := lastSyncAtPath(login)
	if err != nil {
		return "", err
	}
	return readTrimmed(p, "empty last_sync_at file")
}
