package commands

import (
	"fmt"
	"strings"

	"ContactHub/internal/cli/bootstrap"
	"ContactHub/internal/cli/model"
	"ContactHub/internal/cli/notify"
	"ContactHub/internal/cli/service"
	"ContactHub/internal/cli/viewmodel"
	"ContactHub/internal/config"
)

// session — клиенты хранилища на время выполнения одной команды.
type session struct {
	backend    *bootstrap.Backend
	contacts   *service.ContactStore
	categories *service.CategoryStore
	vm         *viewmodel.Contacts
	cats       *viewmodel.Categories
	close      func() error
}

func openSession(cfg *config.Config) (*session, error) {
	b, done, err := bootstrap.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	// уведомления видны в терминале и попадают в журнал при -v
	n := notify.Multi{notify.NewWriter(Out), notify.NewLogger(logger)}
	contacts := service.NewContactStore(b.Contacts, n, logger)
	categories := service.NewCategoryStore(b.Categories, n, logger)
	return &session{
		backend:    b,
		contacts:   contacts,
		categories: categories,
		vm:         viewmodel.NewContacts(contacts.Strict(), n, logger),
		cats:       viewmodel.NewCategories(categories, n),
		close:      done,
	}, nil
}

// parseID разбирает единственный позиционный аргумент-идентификатор.
func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, ErrUsage
	}
	id, err := model.ParseID(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return id, nil
}

// formFields разбирает аргументы вида key=value. Значение может быть пустым.
func formFields(args []string) (map[string]string, []model.Attachment, error) {
	fields := make(map[string]string, len(args))
	var files []model.Attachment
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, nil, ErrUsage
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "attach" {
			att, err := model.NewAttachment(v)
			if err != nil {
				return nil, nil, fmt.Errorf("attach %s: %w", v, err)
			}
			files = append(files, att)
			continue
		}
		if _, known := formKeys[k]; !known {
			return nil, nil, fmt.Errorf("%w: unknown field %q", ErrUsage, k)
		}
		fields[k] = v
	}
	return fields, files, nil
}

var formKeys = map[string]struct{}{
	"first": {}, "last": {}, "email": {}, "phone": {}, "company": {},
	"position": {}, "category": {}, "notes": {}, "fav": {},
}

const formUsage = "first= last= email= phone= [company=] [position=] [category=] [notes=] [fav=true] [attach=<path>]..."

func printFormErrors(errs []model.FormError) error {
	for _, e := range errs {
		fmt.Fprintf(Out, "  %s\n", e.Error())
	}
	return fmt.Errorf("invalid form: %d field(s)", len(errs))
}
