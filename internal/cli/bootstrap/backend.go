// Package bootstrap собирает порты хранилища для команд CLI по конфигурации.
package bootstrap

import (
	"fmt"

	"ContactHub/internal/cli/api"
	"ContactHub/internal/cli/repo"
	fsrepo "ContactHub/internal/cli/repo/fs"
	"ContactHub/internal/cli/repo/local"
	reposqlite "ContactHub/internal/cli/repo/sqlite"
	"ContactHub/internal/config"

	"go.uber.org/zap"
)

// LocalUser — владелец локальной БД, если вход ещё не выполнялся.
const LocalUser = "local"

// Backend — выбранные порты контактов и категорий.
type Backend struct {
	Kind       string
	Contacts   repo.ContactBackend
	Categories repo.CategoryBackend
}

// Tokens возвращает хранилище токена с учётом конфигурации.
func Tokens(cfg *config.Config) fsrepo.AuthFSStore {
	return fsrepo.AuthFSStore{TokenFile: cfg.TokenFile}
}

// Open возвращает (backend, cleanup, error). cleanup нужно вызвать после работы с хранилищем.
func Open(cfg *config.Config, logger *zap.SugaredLogger) (*Backend, func() error, error) {
	if cfg.Backend == config.BackendLocal {
		st, cleanup, err := OpenLocal(cfg.ClientDBPath, logger)
		if err != nil {
			return nil, nil, err
		}
		return &Backend{Kind: config.BackendLocal, Contacts: st, Categories: st}, cleanup, nil
	}
	c := OpenRemote(cfg)
	return &Backend{Kind: config.BackendRemote, Contacts: c, Categories: c}, func() error { return nil }, nil
}

// OpenRemote создаёт HTTP-клиент хранилища.
func OpenRemote(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.ServerURL, cfg.RequestTimeout, Tokens(cfg))
}

// OpenLocal открывает резервное хранилище в БД текущего пользователя
// (или пользователя LocalUser, если вход не выполнялся) и выполняет миграции.
func OpenLocal(base string, logger *zap.SugaredLogger) (*local.Store, func() error, error) {
	login, err := (fsrepo.AuthFSStore{}).LoadLogin()
	if err != nil || login == "" {
		login = LocalUser
	}
	kv, path, err := reposqlite.OpenForUser(base, login)
	if err != nil {
		return nil, nil, fmt.Errorf("open user db: %w", err)
	}
	if err := kv.Migrate(); err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("migrate user db: %w", err)
	}
	if logger != nil {
		logger.Debugw("local store opened", "login", login, "path", path)
	}
	return local.NewStore(kv, logger), kv.Close, nil
}
