package model

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attachment — ссылка на файл, прикреплённый к контакту.
type Attachment struct {
	ID   string
	Name string
	Size int64
	Type string
	URL  string
}

// Contact — контакт в доменном представлении клиента.
type Contact struct {
	ID          int64
	Name        string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Company     string
	Position    string
	Category    string
	Notes       string
	IsFavorite  bool
	Attachments []Attachment
	CreatedOn   time.Time
	ModifiedOn  time.Time
}

// ContactInput — данные формы создания контакта. Пустые строки не передаются в хранилище.
type ContactInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Company     string
	Position    string
	Category    string
	Notes       string
	IsFavorite  bool
	Attachments []Attachment
}

// ContactPatch — частичное обновление. nil означает «не менять»;
// указатель на пустую строку очищает поле.
type ContactPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	Company     *string
	Position    *string
	Category    *string
	Notes       *string
	IsFavorite  *bool
	Attachments *[]Attachment
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p ContactPatch) IsEmpty() bool {
	return p == ContactPatch{}
}

// CompareContacts задаёт порядок списков: имя, затем фамилия без учёта регистра,
// при равенстве по идентификатору.
func CompareContacts(a, b Contact) int {
	if c := strings.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName)); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName)); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// SortContacts упорядочивает срез на месте.
func SortContacts(list []Contact) {
	slices.SortStableFunc(list, CompareContacts)
}

// Category — категория контактов.
type Category struct {
	ID    int64
	Name  string
	Color string
	Icon  string
}

// UncategorizedLabel — метка для контактов без категории в статистике.
const UncategorizedLabel = "Uncategorized"

// Stats — агрегаты по коллекции контактов.
type Stats struct {
	Total      int
	Favorites  int
	ByCategory map[string]int
}

// ParseID приводит строковый идентификатор к ключу хранилища.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid contact id %q", s)
	}
	return id, nil
}

// FormError — ошибка заполнения поля формы.
type FormError struct {
	Field   string
	Message string
}

func (e FormError) Error() string { return e.Field + ": " + e.Message }

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate проверяет форму создания: имя, фамилия, email и телефон обязательны.
func (in ContactInput) Validate() []FormError {
	var errs []FormError
	required := []struct{ field, value string }{
		{"first", in.FirstName}, {"last", in.LastName}, {"email", in.Email}, {"phone", in.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, FormError{Field: r.field, Message: "is required"})
		}
	}
	if in.Email != "" && !emailRe.MatchString(in.Email) {
		errs = append(errs, FormError{Field: "email", Message: "please enter a valid email address"})
	}
	return errs
}

// ValidatePatch проверяет форму редактирования: заданный email должен быть корректным.
func ValidatePatch(p ContactPatch) []FormError {
	if p.Email != nil && *p.Email != "" && !emailRe.MatchString(*p.Email) {
		return []FormError{{Field: "email", Message: "please enter a valid email address"}}
	}
	return nil
}

// NewAttachment описывает локальный файл как вложение. Сам файл никуда не загружается.
func NewAttachment(path string) (Attachment, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Attachment{}, err
	}
	st, err := os.Stat(abs)
	if err != nil {
		return Attachment{}, err
	}
	if st.IsDir() {
		return Attachment{}, fmt.Errorf("%s is a directory", path)
	}
	typ := mime.TypeByExtension(filepath.Ext(abs))
	if typ == "" {
		typ = "application/octet-stream"
	}
	return Attachment{
		ID:   uuid.NewString(),
		Name: st.Name(),
		Size: st.Size(),
		Type: typ,
		URL:  "file://" + filepath.ToSlash(abs),
	}, nil
}
