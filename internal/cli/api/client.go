package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ContactHub/internal/cli/repo"
	"ContactHub/internal/query"
	"ContactHub/internal/records"
)

// Client — HTTP-реализация портов хранилища записей.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  repo.TokenStore
}

var (
	_ repo.ContactBackend  = (*Client)(nil)
	_ repo.FavoriteToggler = (*Client)(nil)
	_ repo.CategoryBackend = (*Client)(nil)
)

// NewClient создаёт клиент. Токен читается из tokens перед каждым запросом;
// timeout ограничивает каждый запрос целиком.
func NewClient(baseURL string, timeout time.Duration, tokens repo.TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

const (
	contactsPath   = "/api/records/" + records.TableContacts
	categoriesPath = "/api/records/" + records.TableCategories
)

// do выполняет запрос и декодирует JSON-ответ в out. Возвращает HTTP-статус.
// Транспортные ошибки оборачивают repo.ErrNetwork.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) (int, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repo.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if tok, err := c.tokens.Load(); err == nil && tok != "" {
			req.AddCookie(&http.Cookie{Name: AuthCookie, Value: tok})
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repo.ErrNetwork, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read body: %v", repo.ErrNetwork, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return resp.StatusCode, &repo.RemoteError{Status: resp.StatusCode, Message: "unauthorized: run login first"}
	}
	if out != nil && len(raw) > 0 && json.Unmarshal(raw, out) == nil {
		return resp.StatusCode, nil
	}
	if resp.StatusCode >= 300 {
		return resp.StatusCode, &repo.RemoteError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}
	if out != nil {
		return resp.StatusCode, fmt.Errorf("%w: unexpected response body", repo.ErrNetwork)
	}
	return resp.StatusCode, nil
}

func rejected(status int, msg string) error {
	return &repo.RemoteError{Status: status, Message: msg}
}

func fetch[T any](ctx context.Context, c *Client, path string, q query.Query) ([]T, error) {
	var resp records.FetchResponse[T]
	status, err := c.do(ctx, http.MethodPost, path+"/fetch", q, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success || status >= 300 {
		return nil, rejected(status, resp.Message)
	}
	return resp.Data, nil
}

func get[T any](ctx context.Context, c *Client, method, path string) (*T, error) {
	var resp records.GetResponse[T]
	status, err := c.do(ctx, method, path, nil, &resp)
	if status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !resp.Success || status >= 300 {
		return nil, rejected(status, resp.Message)
	}
	return resp.Data, nil
}

func mutate[T any](ctx context.Context, c *Client, method, path string, payload any) ([]records.Result[T], error) {
	var resp records.MutationResponse[T]
	status, err := c.do(ctx, method, path, payload, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success || status >= 300 {
		return nil, rejected(status, resp.Message)
	}
	return resp.Results, nil
}

func (c *Client) FetchContacts(ctx context.Context, q query.Query) ([]records.Contact, error) {
	return fetch[records.Contact](ctx, c, contactsPath, q)
}

func (c *Client) GetContact(ctx context.Context, id int64) (*records.Contact, error) {
	return get[records.Contact](ctx, c, http.MethodGet, contactsPath+"/"+strconv.FormatInt(id, 10))
}

func (c *Client) CreateContacts(ctx context.Context, batch []records.ContactFields) ([]records.Result[records.Contact], error) {
	return mutate[records.Contact](ctx, c, http.MethodPost, contactsPath, records.MutationRequest[records.ContactFields]{Records: batch})
}

func (c *Client) UpdateContacts(ctx context.Context, batch []records.ContactFields) ([]records.Result[records.Contact], error) {
	return mutate[records.Contact](ctx, c, http.MethodPatch, contactsPath, records.MutationRequest[records.ContactFields]{Records: batch})
}

func (c *Client) DeleteContacts(ctx context.Context, ids []int64) ([]records.Result[records.Deleted], error) {
	return mutate[records.Deleted](ctx, c, http.MethodDelete, contactsPath, records.DeleteRequest{RecordIDs: ids})
}

// ToggleFavorite использует атомарную операцию сервера.
func (c *Client) ToggleFavorite(ctx context.Context, id int64) (*records.Contact, error) {
	return get[records.Contact](ctx, c, http.MethodPost, contactsPath+"/"+strconv.FormatInt(id, 10)+"/toggle-favorite")
}

func (c *Client) FetchCategories(ctx context.Context, q query.Query) ([]records.Category, error) {
	return fetch[records.Category](ctx, c, categoriesPath, q)
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*records.Category, error) {
	return get[records.Category](ctx, c, http.MethodGet, categoriesPath+"/"+strconv.FormatInt(id, 10))
}

// IsUnauthorized сообщает, что хранилище отклонило запрос из-за отсутствия сессии.
func IsUnauthorized(err error) bool {
	var re *repo.RemoteError
	return errors.As(err, &re) && re.Status == http.StatusUnauthorized
}
