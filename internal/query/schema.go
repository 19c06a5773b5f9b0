package query

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Kind — тип значения поля.
type Kind int

const (
	Text Kind = iota
	Bool
	Int
	Time
	// List — составное значение: поле можно выбрать, но не фильтровать и не сортировать.
	List
)

// Field описывает поле коллекции: имя в запросах, колонку в БД и способ чтения значения из записи.
type Field[T any] struct {
	Name   string
	Column string
	Kind   Kind
	Value  func(*T) any
}

// Schema — набор полей коллекции записей типа T.
type Schema[T any] struct {
	byName map[string]Field[T]
	names  []string
	id     func(*T) int64
}

// NewSchema создаёт схему. id используется для стабильной досортировки.
func NewSchema[T any](id func(*T) int64, fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{byName: make(map[string]Field[T], len(fields)), id: id}
	for _, f := range fields {
		s.byName[f.Name] = f
		s.names = append(s.names, f.Name)
	}
	return s
}

// Lookup возвращает поле по имени.
func (s *Schema[T]) Lookup(name string) (Field[T], bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Names возвращает имена всех полей в порядке объявления.
func (s *Schema[T]) Names() []string {
	return slices.Clone(s.names)
}

func allowed(kind Kind, op Operator) bool {
	switch kind {
	case Text:
		return op == EqualTo || op == NotEqualTo || op == Contains || op == StartsWith
	case Bool, Int:
		return op == EqualTo || op == NotEqualTo
	default:
		return false
	}
}

// Validate проверяет, что запрос ссылается только на известные поля
// и использует допустимые операторы и значения.
func (s *Schema[T]) Validate(q Query) error {
	for _, name := range q.Fields {
		if _, ok := s.byName[name]; !ok {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidQuery, name)
		}
	}
	for _, c := range q.Where {
		if err := s.validateCondition(c); err != nil {
			return err
		}
	}
	for _, g := range q.WhereGroups {
		if err := s.validateGroup(g); err != nil {
			return err
		}
	}
	for _, o := range q.OrderBy {
		f, ok := s.byName[o.FieldName]
		if !ok {
			return fmt.Errorf("%w: unknown sort field %q", ErrInvalidQuery, o.FieldName)
		}
		if f.Kind == List {
			return fmt.Errorf("%w: cannot sort by %q", ErrInvalidQuery, o.FieldName)
		}
		switch strings.ToUpper(o.SortType) {
		case "", Asc, Desc:
		default:
			return fmt.Errorf("%w: bad sort type %q", ErrInvalidQuery, o.SortType)
		}
	}
	if q.Paging != nil && (q.Paging.Limit < 0 || q.Paging.Offset < 0) {
		return fmt.Errorf("%w: negative paging", ErrInvalidQuery)
	}
	return nil
}

func (s *Schema[T]) validateGroup(g Group) error {
	switch strings.ToUpper(g.Operator) {
	case "", And, Or:
	default:
		return fmt.Errorf("%w: bad group operator %q", ErrInvalidQuery, g.Operator)
	}
	for _, c := range g.Conditions {
		if err := s.validateCondition(c); err != nil {
			return err
		}
	}
	for _, sg := range g.SubGroups {
		if err := s.validateGroup(sg); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema[T]) validateCondition(c Condition) error {
	f, ok := s.byName[c.FieldName]
	if !ok {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidQuery, c.FieldName)
	}
	if !allowed(f.Kind, c.Operator) {
		return fmt.Errorf("%w: operator %q not allowed for %q", ErrInvalidQuery, c.Operator, c.FieldName)
	}
	if len(c.Values) == 0 {
		return fmt.Errorf("%w: condition on %q has no values", ErrInvalidQuery, c.FieldName)
	}
	for _, v := range c.Values {
		if _, err := Normalize(f.Kind, v); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidQuery, c.FieldName, err)
		}
	}
	return nil
}

// Normalize приводит значение условия к типу поля.
// Текст приводится к нижнему регистру: сравнение строк регистронезависимое.
func Normalize(kind Kind, v any) (any, error) {
	switch kind {
	case Text:
		switch x := v.(type) {
		case string:
			return strings.ToLower(x), nil
		case float64, int, int64, bool:
			return strings.ToLower(fmt.Sprint(x)), nil
		}
	case Bool:
		switch x := v.(type) {
		case bool:
			return x, nil
		case string:
			b, err := strconv.ParseBool(x)
			if err != nil {
				return nil, fmt.Errorf("not a boolean: %q", x)
			}
			return b, nil
		}
	case Int:
		switch x := v.(type) {
		case float64:
			return int64(x), nil
		case int:
			return int64(x), nil
		case int64:
			return x, nil
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("not an integer: %q", x)
			}
			return n, nil
		}
	}
	return nil, fmt.Errorf("unsupported value %v", v)
}

// Match сообщает, удовлетворяет ли запись условиям запроса. Запрос должен быть провалидирован.
func (s *Schema[T]) Match(rec *T, q Query) bool {
	for _, c := range q.Where {
		if !s.matchCondition(rec, c) {
			return false
		}
	}
	for _, g := range q.WhereGroups {
		if !s.matchGroup(rec, g) {
			return false
		}
	}
	return true
}

func (s *Schema[T]) matchGroup(rec *T, g Group) bool {
	if len(g.Conditions) == 0 && len(g.SubGroups) == 0 {
		return true
	}
	or := strings.EqualFold(g.Operator, Or)
	for _, c := range g.Conditions {
		if ok := s.matchCondition(rec, c); ok == or {
			return or
		}
	}
	for _, sg := range g.SubGroups {
		if ok := s.matchGroup(rec, sg); ok == or {
			return or
		}
	}
	return !or
}

func (s *Schema[T]) matchCondition(rec *T, c Condition) bool {
	f, ok := s.byName[c.FieldName]
	if !ok {
		return false
	}
	actual := f.Value(rec)
	if f.Kind == Text {
		str, _ := actual.(string)
		actual = strings.ToLower(str)
	}
	negative := c.Operator == NotEqualTo
	for _, raw := range c.Values {
		want, err := Normalize(f.Kind, raw)
		if err != nil {
			continue
		}
		var hit bool
		switch c.Operator {
		case EqualTo, NotEqualTo:
			hit = actual == want
		case Contains:
			hit = strings.Contains(actual.(string), want.(string))
		case StartsWith:
			hit = strings.HasPrefix(actual.(string), want.(string))
		}
		if negative && hit {
			return false
		}
		if !negative && hit {
			return true
		}
	}
	return negative
}

// Sort сортирует записи по правилам запроса. Текст сравнивается без учёта регистра,
// при равенстве записи упорядочиваются по идентификатору.
func (s *Schema[T]) Sort(recs []T, orders []Order) {
	slices.SortStableFunc(recs, func(a, b T) int {
		for _, o := range orders {
			f, ok := s.byName[o.FieldName]
			if !ok {
				continue
			}
			c := compare(f.Kind, f.Value(&a), f.Value(&b))
			if strings.EqualFold(o.SortType, Desc) {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		if s.id == nil {
			return 0
		}
		ia, ib := s.id(&a), s.id(&b)
		switch {
		case ia < ib:
			return -1
		case ia > ib:
			return 1
		}
		return 0
	})
}

func compare(kind Kind, a, b any) int {
	switch kind {
	case Text:
		x, _ := a.(string)
		y, _ := b.(string)
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	case Bool:
		x, _ := a.(bool)
		y, _ := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case Int:
		x, _ := a.(int64)
		y, _ := b.(int64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case Time:
		x, _ := a.(time.Time)
		y, _ := b.(time.Time)
		return x.Compare(y)
	}
	return 0
}

// Apply валидирует запрос и исполняет его над срезом записей: фильтрация, сортировка, пагинация.
// Исходный срез не изменяется.
func (s *Schema[T]) Apply(recs []T, q Query) ([]T, error) {
	if err := s.Validate(q); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(recs))
	for i := range recs {
		if s.Match(&recs[i], q) {
			out = append(out, recs[i])
		}
	}
	s.Sort(out, q.OrderBy)
	if q.Paging != nil {
		start := min(q.Paging.Offset, len(out))
		end := len(out)
		if q.Paging.Limit > 0 {
			end = min(start+q.Paging.Limit, len(out))
		}
		out = out[start:end]
	}
	return out, nil
}
