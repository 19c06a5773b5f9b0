package service

import (
	"errors"

	"ContactHub/internal/cli/repo"
)

var (
	// ErrBackendUnavailable — у клиента нет подключения к хранилищу.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrNotFound — записи с таким идентификатором нет.
	ErrNotFound = errors.New("contact not found")
	// ErrRemoteRejected — хранилище отвергло запрос; подробности в *repo.RemoteError.
	ErrRemoteRejected = repo.ErrRemoteRejected
	// ErrNetwork — сетевая или непредвиденная ошибка.
	ErrNetwork = repo.ErrNetwork
)

// Notifier — неблокирующий канал уведомлений пользователя.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// classify приводит ошибку хранилища к одной из категорий таксономии.
func classify(err error) error {
	if errors.Is(err, ErrRemoteRejected) || errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrNotFound) || errors.Is(err, ErrBackendUnavailable) {
		return err
	}
	return errors.Join(ErrNetwork, err)
}
