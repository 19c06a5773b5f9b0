package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ContactHub/internal/query"
	"ContactHub/internal/records"
)

var (
	// ErrNetwork — транспортная или иная непредвиденная ошибка обращения к хранилищу.
	ErrNetwork = errors.New("network error")
	// ErrRemoteRejected — хранилище отвергло запрос (валидация, авторизация, внутренняя ошибка).
	ErrRemoteRejected = errors.New("rejected by backend")
)

// RemoteError — отказ хранилища с сообщением и ошибками по полям.
type RemoteError struct {
	Status  int
	Message string
	Fields  []records.FieldError
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = ErrRemoteRejected.Error()
	}
	if len(e.Fields) == 0 {
		return msg
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s (%s)", msg, strings.Join(parts, "; "))
}

func (e *RemoteError) Unwrap() error { return ErrRemoteRejected }

// ContactBackend — порт коллекции контактов.
// Отсутствие записи в GetContact сообщается как (nil, nil).
type ContactBackend interface {
	FetchContacts(ctx context.Context, q query.Query) ([]records.Contact, error)
	GetContact(ctx context.Context, id int64) (*records.Contact, error)
	CreateContacts(ctx context.Context, batch []records.ContactFields) ([]records.Result[records.Contact], error)
	UpdateContacts(ctx context.Context, batch []records.ContactFields) ([]records.Result[records.Contact], error)
	DeleteContacts(ctx context.Context, ids []int64) ([]records.Result[records.Deleted], error)
}

// FavoriteToggler — необязательная возможность хранилища атомарно инвертировать
// флаг избранного. Отсутствие записи сообщается как (nil, nil).
type FavoriteToggler interface {
	ToggleFavorite(ctx context.Context, id int64) (*records.Contact, error)
}

// CategoryBackend — порт коллекции категорий.
type CategoryBackend interface {
	FetchCategories(ctx context.Context, q query.Query) ([]records.Category, error)
	GetCategory(ctx context.Context, id int64) (*records.Category, error)
}

// KVSlot — локальный слот ключ/значение для резервного хранилища.
type KVSlot interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}
