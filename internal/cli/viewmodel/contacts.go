// Package viewmodel хранит состояние сессии CLI поверх клиентов хранилища.
package viewmodel

import (
	"context"
	"errors"
	"slices"
	"sync"

	"ContactHub/internal/cli/model"
	"ContactHub/internal/cli/service"

	"go.uber.org/zap"
)

// ContactStore — операции клиента контактов, которые нужны view-model.
type ContactStore interface {
	ListAll(ctx context.Context) ([]model.Contact, error)
	Create(ctx context.Context, in model.ContactInput) (*model.Contact, error)
	Update(ctx context.Context, id int64, patch model.ContactPatch) (*model.Contact, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, text string) ([]model.Contact, error)
	GetByCategory(ctx context.Context, category string) ([]model.Contact, error)
	ToggleFavorite(ctx context.Context, id int64) (*model.Contact, error)
}

var _ ContactStore = (*service.ContactStore)(nil)

// State — снимок состояния. Error относится к последней замене коллекции:
// сбои мутаций в него не попадают, их видит вызывающий.
type State struct {
	Contacts []model.Contact
	Loading  bool
	Error    string
}

// Contacts — коллекция контактов текущей сессии. Безопасна для конкурентного использования.
//
// Операции, заменяющие коллекцию целиком (Load, Reload, Search, FilterByCategory),
// нумеруются: результат операции, после начала которой стартовала более новая,
// отбрасывается. Результаты мутаций вливаются в коллекцию по идентификатору;
// пока идёт замена, они же записываются в журнал и накладываются на её результат,
// если завершились после того, как замена начала читать хранилище.
type Contacts struct {
	store    ContactStore
	notifier service.Notifier
	logger   *zap.SugaredLogger

	mu       sync.Mutex
	contacts []model.Contact
	loading  bool
	err      string
	gen      uint64

	seq      uint64
	inflight int
	journal  []mutation
}

// mutation — завершённое изменение, которое нужно повторить поверх
// результата замены, начатой раньше него.
type mutation struct {
	seq     uint64
	contact model.Contact
	deleted bool
}

// Сообщения об ошибках по операциям.
var failMessages = map[string]string{
	"load":     "Failed to load contacts. Please try again.",
	"search":   "Failed to search contacts. Please try again.",
	"filter":   "Failed to filter contacts. Please try again.",
	"create":   "Failed to create contact. Please try again.",
	"update":   "Failed to update contact. Please try again.",
	"delete":   "Failed to delete contact. Please try again.",
	"favorite": "Failed to update favorite status.",
}

func NewContacts(store ContactStore, notifier service.Notifier, logger *zap.SugaredLogger) *Contacts {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Contacts{store: store, notifier: notifier, logger: logger, contacts: []model.Contact{}}
}

// State возвращает копию текущего состояния.
func (c *Contacts) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{Contacts: slices.Clone(c.contacts), Loading: c.loading, Error: c.err}
}

// Load заменяет коллекцию полным списком. При ошибке прежняя коллекция сохраняется.
func (c *Contacts) Load(ctx context.Context) error {
	return c.replace(ctx, "load", c.store.ListAll)
}

// Reload — явная полная перезагрузка.
func (c *Contacts) Reload(ctx context.Context) error {
	return c.Load(ctx)
}

// Search заменяет коллекцию результатом поиска.
func (c *Contacts) Search(ctx context.Context, text string) error {
	return c.replace(ctx, "search", func(ctx context.Context) ([]model.Contact, error) {
		return c.store.Search(ctx, text)
	})
}

// FilterByCategory заменяет коллекцию контактами категории.
func (c *Contacts) FilterByCategory(ctx context.Context, category string) error {
	return c.replace(ctx, "filter", func(ctx context.Context) ([]model.Contact, error) {
		return c.store.GetByCategory(ctx, category)
	})
}

func (c *Contacts) replace(ctx context.Context, op string, fetch func(context.Context) ([]model.Contact, error)) error {
	c.mu.Lock()
	c.gen++
	gen, from := c.gen, c.seq
	c.inflight++
	c.loading = true
	c.mu.Unlock()

	list, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		c.inflight--
		if c.inflight == 0 {
			c.journal = nil
		}
	}()
	if gen != c.gen {
		c.logger.Debugw("contacts: stale result discarded", "op", op, "gen", gen, "current", c.gen)
		return nil
	}
	c.loading = false
	if err != nil {
		c.err = failMessages[op]
		c.notifyFailure(op, err)
		return err
	}
	for _, m := range c.journal {
		if m.seq > from {
			list = apply(list, m)
		}
	}
	c.contacts = list
	c.err = ""
	return nil
}

// notifyFailure сообщает об ошибке. Ошибки хранилища клиент уже сообщил пользователю,
// здесь уведомляем только об отсутствии подключения.
func (c *Contacts) notifyFailure(op string, err error) {
	c.logger.Warnw("contacts: operation failed", "op", op, "error", err)
	if errors.Is(err, service.ErrBackendUnavailable) && c.notifier != nil {
		c.notifier.Error(failMessages[op])
	}
}

// record применяет мутацию к коллекции и, если идёт замена, заносит её в журнал.
func (c *Contacts) record(m mutation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	m.seq = c.seq
	if c.inflight > 0 {
		c.journal = append(c.journal, m)
	}
	c.contacts = apply(c.contacts, m)
}

// apply вставляет, заменяет или удаляет контакт и восстанавливает порядок.
func apply(list []model.Contact, m mutation) []model.Contact {
	i := slices.IndexFunc(list, func(x model.Contact) bool { return x.ID == m.contact.ID })
	switch {
	case m.deleted && i >= 0:
		return slices.Delete(list, i, i+1)
	case m.deleted:
		return list
	case i >= 0:
		list[i] = m.contact
	default:
		list = append(list, m.contact)
	}
	model.SortContacts(list)
	return list
}

func (c *Contacts) success(msg string) {
	if c.notifier != nil {
		c.notifier.Success(msg)
	}
}

// Create создаёт контакт и добавляет его в коллекцию.
func (c *Contacts) Create(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	created, err := c.store.Create(ctx, in)
	if err != nil {
		c.notifyFailure("create", err)
		return nil, err
	}
	c.record(mutation{contact: *created})
	c.success("Contact created successfully!")
	return created, nil
}

// Update применяет патч и заменяет контакт в коллекции.
func (c *Contacts) Update(ctx context.Context, id int64, patch model.ContactPatch) (*model.Contact, error) {
	updated, err := c.store.Update(ctx, id, patch)
	if err != nil {
		c.notifyFailure("update", err)
		return nil, err
	}
	c.record(mutation{contact: *updated})
	c.success("Contact updated successfully!")
	return updated, nil
}

// Delete удаляет контакт и убирает его из коллекции.
func (c *Contacts) Delete(ctx context.Context, id int64) error {
	if err := c.store.Delete(ctx, id); err != nil {
		c.notifyFailure("delete", err)
		return err
	}
	c.record(mutation{contact: model.Contact{ID: id}, deleted: true})
	c.success("Contact deleted successfully!")
	return nil
}

// ToggleFavorite инвертирует флаг избранного и сообщает, в какую сторону он изменился.
func (c *Contacts) ToggleFavorite(ctx context.Context, id int64) (*model.Contact, error) {
	updated, err := c.store.ToggleFavorite(ctx, id)
	if err != nil {
		c.notifyFailure("favorite", err)
		return nil, err
	}
	c.record(mutation{contact: *updated})
	if updated.IsFavorite {
		c.success("Added to favorites!")
	} else {
		c.success("Removed from favorites!")
	}
	return updated, nil
}
