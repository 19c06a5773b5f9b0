// Package query описывает язык запросов к коллекциям записей:
// выборка полей, условия where / whereGroups, сортировка и пагинация.
// Один и тот же запрос исполняется сервером (через SQL) и локальным хранилищем (в памяти).
package query

import "errors"

// Operator — оператор сравнения в условии.
type Operator string

const (
	EqualTo    Operator = "EqualTo"
	NotEqualTo Operator = "NotEqualTo"
	Contains   Operator = "Contains"
	StartsWith Operator = "StartsWith"
)

// Логические операторы групп.
const (
	And = "AND"
	Or  = "OR"
)

// Направления сортировки.
const (
	Asc  = "ASC"
	Desc = "DESC"
)

// ErrInvalidQuery возвращается, если запрос ссылается на неизвестные поля
// или использует недопустимый для типа поля оператор.
var ErrInvalidQuery = errors.New("invalid query")

// Condition — одно условие по полю. Для позитивных операторов достаточно совпадения
// с любым из значений, для NotEqualTo поле должно отличаться от всех.
type Condition struct {
	FieldName string   `json:"FieldName"`
	Operator  Operator `json:"Operator"`
	Values    []any    `json:"Values"`
}

// Group — группа условий, объединённых оператором AND или OR. Группы могут быть вложенными.
type Group struct {
	Operator   string      `json:"operator"`
	Conditions []Condition `json:"conditions,omitempty"`
	SubGroups  []Group     `json:"subGroups,omitempty"`
}

// Order — сортировка по полю.
type Order struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"`
}

// Paging — ограничение выборки.
type Paging struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Query — запрос к коллекции. Условия Where и группы WhereGroups объединяются через AND.
type Query struct {
	Fields      []string    `json:"fields,omitempty"`
	Where       []Condition `json:"where,omitempty"`
	WhereGroups []Group     `json:"whereGroups,omitempty"`
	OrderBy     []Order     `json:"orderBy,omitempty"`
	Paging      *Paging     `json:"pagingInfo,omitempty"`
}

// New создаёт запрос с выборкой указанных полей.
func New(fields ...string) Query {
	return Query{Fields: fields}
}

// Filter добавляет условия, объединяемые через AND.
func (q Query) Filter(conds ...Condition) Query {
	q.Where = append(append([]Condition(nil), q.Where...), conds...)
	return q
}

// Grouped добавляет группы условий.
func (q Query) Grouped(groups ...Group) Query {
	q.WhereGroups = append(append([]Group(nil), q.WhereGroups...), groups...)
	return q
}

// Sorted добавляет сортировку.
func (q Query) Sorted(orders ...Order) Query {
	q.OrderBy = append(append([]Order(nil), q.OrderBy...), orders...)
	return q
}

// Limit ограничивает выборку.
func (q Query) Limit(limit, offset int) Query {
	q.Paging = &Paging{Limit: limit, Offset: offset}
	return q
}

// Eq — условие равенства.
func Eq(field string, values ...any) Condition {
	return Condition{FieldName: field, Operator: EqualTo, Values: values}
}

// Like — условие вхождения подстроки.
func Like(field string, value string) Condition {
	return Condition{FieldName: field, Operator: Contains, Values: []any{value}}
}

// AnyOf — OR-группа из условий.
func AnyOf(conds ...Condition) Group {
	return Group{Operator: Or, Conditions: conds}
}

// AllOf — AND-группа из условий.
func AllOf(conds ...Condition) Group {
	return Group{Operator: And, Conditions: conds}
}

// AscBy — сортировка по возрастанию.
func AscBy(field string) Order { return Order{FieldName: field, SortType: Asc} }

// DescBy — сортировка по убыванию.
func DescBy(field string) Order { return Order{FieldName: field, SortType: Desc} }
