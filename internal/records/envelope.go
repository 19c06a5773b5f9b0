package records

import "fmt"

// Коллекции хранилища.
const (
	TableContacts   = "contacts"
	TableCategories = "categories"
)

// FetchResponse — ответ на выборку записей.
type FetchResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    []T    `json:"data"`
	Total   int    `json:"total"`
}

// GetResponse — ответ на чтение одной записи.
type GetResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data"`
}

// MutationRequest — пакет записей на создание или обновление.
type MutationRequest[T any] struct {
	Records []T `json:"records"`
}

// DeleteRequest — пакет идентификаторов на удаление.
type DeleteRequest struct {
	RecordIDs []int64 `json:"RecordIds"`
}

// Коды отказа по записи пакета. Клиенты ветвятся по коду, а не по тексту сообщения.
const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeInternal   = "internal"
)

// Result — результат операции над одной записью пакета.
type Result[T any] struct {
	Success bool         `json:"success"`
	Data    *T           `json:"data,omitempty"`
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Invalid — отказ из-за ошибок валидации полей.
func Invalid[T any](errs []FieldError) Result[T] {
	return Result[T]{Code: CodeValidation, Message: "validation failed", Errors: errs}
}

// NotFound — отказ: записи с таким идентификатором нет.
func NotFound[T any](id int64) Result[T] {
	return Result[T]{Code: CodeNotFound, Message: fmt.Sprintf("record %d not found", id)}
}

// MutationResponse — ответ на пакетную операцию. Success=false означает, что запрос
// не был обработан целиком; результаты по отдельным записям лежат в Results.
type MutationResponse[T any] struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Results []Result[T] `json:"results"`
}

// Deleted — тело результата удаления.
type Deleted struct {
	ID int64 `json:"Id"`
}

// Ptr возвращает указатель на копию значения.
func Ptr[T any](v T) *T { return &v }
