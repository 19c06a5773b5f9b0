package service

import (
	"ContactHub/internal/model"
	"ContactHub/internal/query"
	"ContactHub/internal/records"
	"ContactHub/internal/repo"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound — запись отсутствует или принадлежит другому пользователю.
var ErrNotFound = errors.New("record not found")

const msgInternal = "internal error"

// ContactService — операции над контактами пользователя.
type ContactService struct {
	repo   repo.ContactRepository
	logger *zap.SugaredLogger
}

func NewContactService(r repo.ContactRepository, logger *zap.SugaredLogger) *ContactService {
	return &ContactService{repo: r, logger: logger}
}

// Fetch исполняет запрос. Ошибка валидации запроса оборачивает query.ErrInvalidQuery.
func (s *ContactService) Fetch(ctx context.Context, userID int64, q query.Query) ([]records.Contact, error) {
	list, err := s.repo.Query(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	out := make([]records.Contact, 0, len(list))
	for i := range list {
		out = append(out, list[i].Record())
	}
	return out, nil
}

// Get возвращает контакт по идентификатору.
func (s *ContactService) Get(ctx context.Context, userID, id int64) (*records.Contact, error) {
	c, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	rec := c.Record()
	return &rec, nil
}

// Create создаёт пакет контактов. Результат возвращается по каждой записи отдельно.
func (s *ContactService) Create(ctx context.Context, userID int64, batch []records.ContactFields) []records.Result[records.Contact] {
	results := make([]records.Result[records.Contact], 0, len(batch))
	for _, f := range batch {
		if errs := records.ValidateContact(f, true); len(errs) > 0 {
			results = append(results, records.Invalid[records.Contact](errs))
			continue
		}
		var rec records.Contact
		f.Apply(&rec)
		m := &model.Contact{UserID: userID}
		m.ApplyRecord(rec)
		if err := s.repo.Create(ctx, m); err != nil {
			s.logger.Errorw("create contact failed", "user_id", userID, "error", err)
			results = append(results, records.Result[records.Contact]{Code: records.CodeInternal, Message: msgInternal})
			continue
		}
		created := m.Record()
		results = append(results, records.Result[records.Contact]{Success: true, Data: &created})
	}
	return results
}

// Update применяет частичные записи. Отображаемое имя пересчитывается на сервере.
func (s *ContactService) Update(ctx context.Context, userID int64, batch []records.ContactFields) []records.Result[records.Contact] {
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
		updated, err := s.repo.Update(ctx, userID, *f.ID, func(c *model.Contact) error {
			rec := c.Record()
			f.Apply(&rec)
			c.ApplyRecord(rec)
			return nil
		})
		if err != nil {
			results = append(results, s.failure(userID, *f.ID, "update", err))
			continue
		}
		rec := updated.Record()
		results = append(results, records.Result[records.Contact]{Success: true, Data: &rec})
	}
	return results
}

// Delete удаляет контакты по идентификаторам.
func (s *ContactService) Delete(ctx context.Context, userID int64, ids []int64) []records.Result[records.Deleted] {
	results := make([]records.Result[records.Deleted], 0, len(ids))
	for _, id := range ids {
		if err := s.repo.Delete(ctx, userID, id); err != nil {
			r := s.failure(userID, id, "delete", err)
			results = append(results, records.Result[records.Deleted]{Code: r.Code, Message: r.Message})
			continue
		}
		results = append(results, records.Result[records.Deleted]{Success: true, Data: &records.Deleted{ID: id}})
	}
	return results
}

// ToggleFavorite атомарно инвертирует флаг избранного.
func (s *ContactService) ToggleFavorite(ctx context.Context, userID, id int64) (*records.Contact, error) {
	c, err := s.repo.ToggleFavorite(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	rec := c.Record()
	return &rec, nil
}

func (s *ContactService) failure(userID, id int64, op string, err error) records.Result[records.Contact] {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return records.NotFound[records.Contact](id)
	}
	s.logger.Errorw(op+" contact failed", "user_id", userID, "id", id, "error", err)
	return records.Result[records.Contact]{Code: records.CodeInternal, Message: msgInternal}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
