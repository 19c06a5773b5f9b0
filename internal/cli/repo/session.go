package repo

// TokenStore хранит JWT сессии, с которым клиент ходит в /api/records.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
}

// UserContextStore помнит последний вошедший логин: по нему выбирается
// локальная база контактов и отметка последней синхронизации.
type UserContextStore interface {
	SaveLogin(login string) error
	LoadLogin() (string, error)
}
