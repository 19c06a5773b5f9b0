package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ContactHub/internal/cli/api"
	"ContactHub/internal/cli/repo"
)

var (
	ErrLoginTaken         = errors.New("login already in use")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthService — регистрация и вход пользователя CLI. Токен сессии и последний логин
// сохраняются в переданные хранилища.
type AuthService struct {
	serverURL string
	tokens    repo.TokenStore
	users     repo.UserContextStore
}

func NewAuthService(serverURL string, tokens repo.TokenStore, users repo.UserContextStore) *AuthService {
	return &AuthService{serverURL: strings.TrimRight(serverURL, "/"), tokens: tokens, users: users}
}

// Register создаёт пользователя и сразу сохраняет сессию.
func (s *AuthService) Register(ctx context.Context, login, password string) error {
	return s.authenticate(ctx, "/api/user/register", login, password, http.StatusConflict, ErrLoginTaken)
}

// Login выполняет вход и сохраняет сессию.
func (s *AuthService) Login(ctx context.Context, login, password string) error {
	return s.authenticate(ctx, "/api/user/login", login, password, http.StatusUnauthorized, ErrInvalidCredentials)
}

func (s *AuthService) authenticate(ctx context.Context, path, login, password string, rejectStatus int, rejectErr error) error {
	resp, body, err := api.PostJSON(ctx, s.serverURL+path, credentials{Login: login, Password: password}, "")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case rejectStatus:
		return rejectErr
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	if err := api.PersistAuthFromResponse(resp, s.tokens); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	if err := s.users.SaveLogin(login); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}
	return nil
}

// CurrentUser возвращает логин последнего успешного входа.
func (s *AuthService) CurrentUser() (string, error) {
	return s.users.LoadLogin()
}
