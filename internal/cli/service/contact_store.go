package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ContactHub/internal/cli/model"
	"ContactHub/internal/cli/repo"
	"ContactHub/internal/query"
	"ContactHub/internal/records"

	"go.uber.org/zap"
)

// CategoryAll — значение фильтра, означающее «все категории».
const CategoryAll = "all"

// searchFields — поля, по которым ищет Search.
var searchFields = []string{
	records.FieldFirstName, records.FieldLastName, records.FieldEmail, records.FieldCompany, records.FieldPhone,
}

// ContactStore — клиент коллекции контактов поверх порта хранилища.
//
// Ошибки хранилища при чтении не возвращаются вызывающему: они журналируются,
// отправляются в Notifier, а результатом становится пустой список (или nil).
// Мутации дополнительно возвращают классифицированную ошибку.
// Собственных таймаутов клиент не задаёт: они на стороне транспорта.
type ContactStore struct {
	backend  repo.ContactBackend
	notifier Notifier
	logger   *zap.SugaredLogger
	strict   bool
}

// NewContactStore создаёт клиент. backend может быть nil: тогда операции
// возвращают ErrBackendUnavailable.
func NewContactStore(backend repo.ContactBackend, notifier Notifier, logger *zap.SugaredLogger) *ContactStore {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ContactStore{backend: backend, notifier: notifier, logger: logger}
}

// Strict возвращает клиент над тем же хранилищем, списочные запросы которого после
// уведомления возвращают и классифицированную ошибку. Нужен view-model: при сбое
// загрузки она сохраняет прежний список вместо пустого.
func (s *ContactStore) Strict() *ContactStore {
	cp := *s
	cp.strict = true
	return &cp
}

func listQuery() query.Query {
	return query.New(records.ContactFieldNames...).
		Sorted(query.AscBy(records.FieldFirstName), query.AscBy(records.FieldLastName))
}

// report журналирует ошибку и сообщает о ней пользователю.
func (s *ContactStore) report(op string, err error, kv ...any) {
	s.logger.Errorw("contact store: "+op+" failed", append(kv, "error", err)...)
	s.notifier.Error(fmt.Sprintf("Failed to %s: %v", op, err))
}

func (s *ContactStore) fetch(ctx context.Context, op string, q query.Query) ([]model.Contact, error) {
	if s.backend == nil {
		return nil, ErrBackendUnavailable
	}
	list, err := s.backend.FetchContacts(ctx, q)
	if err != nil {
		err = classify(err)
		s.report(op, err)
		if s.strict {
			return []model.Contact{}, err
		}
		return []model.Contact{}, nil
	}
	return toModels(list), nil
}

// ListAll возвращает все контакты, упорядоченные по имени и фамилии.
func (s *ContactStore) ListAll(ctx context.Context) ([]model.Contact, error) {
	return s.fetch(ctx, "load contacts", listQuery())
}

// GetByID возвращает контакт или nil, если его нет.
func (s *ContactStore) GetByID(ctx context.Context, id int64) (*model.Contact, error) {
	if s.backend == nil {
		return nil, ErrBackendUnavailable
	}
	r, err := s.backend.GetContact(ctx, id)
	if err != nil {
		s.report("load contact", classify(err), "id", id)
		return nil, nil
	}
	if r == nil {
		return nil, nil
	}
	c := toModel(*r)
	return &c, nil
}

// Create создаёт контакт. Пустые поля не передаются, отображаемое имя собирается
// из оставшихся имени и фамилии.
func (s *ContactStore) Create(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	if s.backend == nil {
		return nil, ErrBackendUnavailable
	}
	res, err := s.backend.CreateContacts(ctx, []records.ContactFields{createFields(in)})
	created, err := s.single("create contact", res, err)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("contact created", "id", created.ID)
	return created, nil
}

// Update применяет патч к контакту с идентификатором id.
func (s *ContactStore) Update(ctx context.Context, id int64, patch model.ContactPatch) (*model.Contact, error) {
	if s.backend == nil {
		return nil, ErrBackendUnavailable
	}
	res, err := s.backend.UpdateContacts(ctx, []records.ContactFields{patchFields(id, patch)})
	updated, err := s.single("update contact", res, err)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("contact updated", "id", id)
	return updated, nil
}

// single разбирает ответ на пакет из одной записи.
func (s *ContactStore) single(op string, res []records.Result[records.Contact], err error) (*model.Contact, error) {
	if err != nil {
		err = classify(err)
		s.report(op, err)
		return nil, err
	}
	if len(res) == 0 {
		err = &repo.RemoteError{Message: "empty result"}
		s.report(op, err)
		return nil, err
	}
	r := res[0]
	if !r.Success || r.Data == nil {
		err = resultError(r.Code, r.Message, r.Errors)
		s.report(op, err)
		return nil, err
	}
	c := toModel(*r.Data)
	return &c, nil
}

// resultError классифицирует отказ по записи пакета по его коду.
func resultError(code, msg string, fields []records.FieldError) error {
	if code == records.CodeNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}
	return &repo.RemoteError{Message: msg, Fields: fields}
}

// Delete удаляет контакт. nil означает успех.
func (s *ContactStore) Delete(ctx context.Context, id int64) error {
	if s.backend == nil {
		return ErrBackendUnavailable
	}
	res, err := s.backend.DeleteContacts(ctx, []int64{id})
	switch {
	case err != nil:
		err = classify(err)
	case len(res) == 0:
		err = &repo.RemoteError{Message: "empty result"}
	case !res[0].Success:
		err = resultError(res[0].Code, res[0].Message, res[0].Errors)
	}
	if err != nil {
		s.report("delete contact", err, "id", id)
		return err
	}
	s.logger.Infow("contact deleted", "id", id)
	return nil
}

// Search ищет подстроку без учёта регистра в имени, фамилии, email, компании и телефоне.
// Пустой запрос эквивалентен ListAll.
func (s *ContactStore) Search(ctx context.Context, text string) ([]model.Contact, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.ListAll(ctx)
	}
	conds := make([]query.Condition, 0, len(searchFields))
	for _, f := range searchFields {
		conds = append(conds, query.Like(f, text))
	}
	return s.fetch(ctx, "search contacts", listQuery().Grouped(query.AnyOf(conds...)))
}

// GetByCategory фильтрует по точному (без учёта регистра) совпадению категории.
// "all" и пустая строка эквивалентны ListAll.
func (s *ContactStore) GetByCategory(ctx context.Context, category string) ([]model.Contact, error) {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return s.ListAll(ctx)
	}
	return s.fetch(ctx, "filter contacts", listQuery().Filter(query.Eq(records.FieldCategory, category)))
}

// GetFavorites возвращает избранные контакты.
func (s *ContactStore) GetFavorites(ctx context.Context) ([]model.Contact, error) {
	return s.fetch(ctx, "load favorites", listQuery().Filter(query.Eq(records.FieldIsFavorite, true)))
}

// ToggleFavorite инвертирует флаг избранного. Если хранилище умеет делать это атомарно
// (repo.FavoriteToggler), используется эта операция. Иначе выполняется чтение и запись:
// параллельное изменение флага между ними будет перезаписано.
func (s *ContactStore) ToggleFavorite(ctx context.Context, id int64) (*model.Contact, error) {
	if s.backend == nil {
		return nil, ErrBackendUnavailable
	}
	if t, ok := s.backend.(repo.FavoriteToggler); ok {
		r, err := t.ToggleFavorite(ctx, id)
		switch {
		case err != nil:
			err = classify(err)
		case r == nil:
			err = fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		if err != nil {
			s.report("update favorite", err, "id", id)
			return nil, err
		}
		c := toModel(*r)
		return &c, nil
	}

	current, err := s.backend.GetContact(ctx, id)
	switch {
	case err != nil:
		err = classify(err)
	case current == nil:
		err = fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		s.report("update favorite", err, "id", id)
		return nil, err
	}
	return s.Update(ctx, id, model.ContactPatch{IsFavorite: records.Ptr(!current.IsFavorite)})
}

// GetStats считает агрегаты по полной коллекции на стороне клиента.
func (s *ContactStore) GetStats(ctx context.Context) (model.Stats, error) {
	list, err := s.ListAll(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return Stats(list), nil
}

// Stats считает агрегаты по переданному списку.
func Stats(list []model.Contact) model.Stats {
	st := model.Stats{Total: len(list), ByCategory: map[string]int{}}
	for _, c := range list {
		if c.IsFavorite {
			st.Favorites++
		}
		cat := strings.TrimSpace(c.Category)
		if cat == "" {
			cat = model.UncategorizedLabel
		}
		st.ByCategory[cat]++
	}
	return st
}

// IsNotFound сообщает, что операция не нашла запись.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
