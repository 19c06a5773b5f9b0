// Package local реализует резервное хранилище записей: коллекции живут в памяти,
// контакты сохраняются в локальный слот ключ/значение.
package local

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"ContactHub/internal/cli/repo"
	"ContactHub/internal/query"
	"ContactHub/internal/records"
	"ContactHub/internal/seed"

	"go.uber.org/zap"
)

// StorageKey — ключ слота, под которым хранится коллекция контактов.
const StorageKey = "contactHub_contacts"

// Store — локальное хранилище контактов и категорий.
// Ошибки чтения и записи слота журналируются и не прерывают работу.
type Store struct {
	mu         sync.Mutex
	slot       repo.KVSlot
	logger     *zap.SugaredLogger
	contacts   []records.Contact
	categories []records.Category
	nextID     int64
	now        func() time.Time
}

var (
	_ repo.ContactBackend  = (*Store)(nil)
	_ repo.FavoriteToggler = (*Store)(nil)
	_ repo.CategoryBackend = (*Store)(nil)
)

// NewStore загружает контакты из слота; если слота нет или он пуст, берётся стартовый набор.
// slot может быть nil: тогда данные живут только в памяти.
func NewStore(slot repo.KVSlot, logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Store{slot: slot, logger: logger, now: time.Now}
	s.contacts = s.load()
	cats, err := seed.Categories()
	if err != nil {
		logger.Warnw("local store: seed categories", "error", err)
	}
	s.categories = cats
	for _, c := range s.contacts {
		s.nextID = max(s.nextID, c.ID)
	}
	return s
}

func (s *Store) load() []records.Contact {
	if s.slot != nil {
		raw, ok, err := s.slot.Get(StorageKey)
		switch {
		case err != nil:
			s.logger.Warnw("local store: read slot", "key", StorageKey, "error", err)
		case ok:
			var list []records.Contact
			err := json.Unmarshal(raw, &list)
			if err == nil {
				return list
			}
			s.logger.Warnw("local store: decode slot", "key", StorageKey, "error", err)
		}
	}
	list, err := seed.Contacts()
	if err != nil {
		s.logger.Warnw("local store: seed contacts", "error", err)
		return nil
	}
	return list
}

// save вызывается под s.mu.
func (s *Store) save() {
	if s.slot == nil {
		return
	}
	raw, err := json.Marshal(s.contacts)
	if err == nil {
		err = s.slot.Put(StorageKey, raw)
	}
	if err != nil {
		s.logger.Warnw("local store: write slot", "key", StorageKey, "error", err)
	}
}

func clone(c records.Contact) records.Contact {
	c.Attachments = slices.Clone(c.Attachments)
	if c.Attachments == nil {
		c.Attachments = []records.Attachment{}
	}
	return c
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.contacts, func(c records.Contact) bool { return c.ID == id })
}

func (s *Store) FetchContacts(_ context.Context, q query.Query) ([]records.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := records.ContactSchema.Apply(s.contacts, q)
	if err != nil {
		return nil, err
	}
	out := make([]records.Contact, 0, len(list))
	for _, c := range list {
		out = append(out, clone(c))
	}
	return out, nil
}

func (s *Store) GetContact(_ context.Context, id int64) (*records.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	c := clone(s.contacts[i])
	return &c, nil
}

func (s *Store) CreateContacts(_ context.Context, batch []records.ContactFields) ([]records.Result[records.Contact], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]records.Result[records.Contact], 0, len(batch))
	for _, f := range batch {
		if errs := records.ValidateContact(f, true); len(errs) > 0 {
			results = append(results, records.Invalid[records.Contact](errs))
			continue
		}
		var c records.Contact
		f.Apply(&c)
		s.nextID++
		c.ID = s.nextID
		c.CreatedOn = s.now().UTC()
		c.ModifiedOn = c.CreatedOn
		s.contacts = append(s.contacts, c)
		out := clone(c)
		results = append(results, records.Result[records.Contact]{Success: true, Data: &out})
	}
	s.save()
	return results, nil
}

func (s *Store) UpdateContacts(_ context.Context, batch []records.ContactFields) ([]records.Result[records.Contact], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]records.Result[records.Contact], 0, len(batch))
	for _, f := range batch {
		if f.ID == nil {
			results = append(results, records.Invalid[records.Contact](
				[]records.FieldError{{FieldLabel: records.FieldID, Message: "Id is required"}},
			))
			continue
		}
		if errs := records.ValidateContact(f, false); len(errs) > 0 {
			results = append(results, records.Invalid[records.Contact](errs))
			continue
		}
		i := s.indexOf(*f.ID)
		if i < 0 {
			results = append(results, records.NotFound[records.Contact](*f.ID))
			continue
		}
		c := clone(s.contacts[i])
		f.Apply(&c)
		c.ModifiedOn = s.now().UTC()
		s.contacts[i] = c
		out := clone(c)
		results = append(results, records.Result[records.Contact]{Success: true, Data: &out})
	}
	s.save()
	return results, nil
}

func (s *Store) DeleteContacts(_ context.Context, ids []int64) ([]records.Result[records.Deleted], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]records.Result[records.Deleted], 0, len(ids))
	for _, id := range ids {
		i := s.indexOf(id)
		if i < 0 {
			results = append(results, records.NotFound[records.Deleted](id))
			continue
		}
		s.contacts = slices.Delete(s.contacts, i, i+1)
		results = append(results, records.Result[records.Deleted]{Success: true, Data: &records.Deleted{ID: id}})
	}
	s.save()
	return results, nil
}

// ToggleFavorite инвертирует флаг под блокировкой хранилища.
func (s *Store) ToggleFavorite(_ context.Context, id int64) (*records.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	s.contacts[i].IsFavorite = !s.contacts[i].IsFavorite
	s.contacts[i].ModifiedOn = s.now().UTC()
	s.save()
	c := clone(s.contacts[i])
	return &c, nil
}

func (s *Store) FetchCategories(_ context.Context, q query.Query) ([]records.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return records.CategorySchema.Apply(s.categories, q)
}

func (s *Store) GetCategory(_ context.Context, id int64) (*records.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}
