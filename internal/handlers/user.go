package handlers

import (
	"ContactHub/internal/config"
	"ContactHub/internal/middleware"
	"ContactHub/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и проверку сессии.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func decodeCredentials(r *http.Request) (credentials, error) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		return c, err
	}
	c.Login = strings.TrimSpace(c.Login)
	if c.Login == "" || c.Password == "" {
		return c, errors.New("login and password are required")
	}
	return c, nil
}

// Register регистрация пользователя; при успехе сразу выставляет cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r)
	if err != nil {
		h.Logger.Warnw("Register: invalid request", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	user, err := h.UserService.Register(r.Context(), c.Login, c.Password)
	if errors.Is(err, service.ErrLoginTaken) {
		http.Error(w, "login already taken", http.StatusConflict)
		return
	}
	if err != nil {
		h.Logger.Errorw("Register: service error", "login", c.Login, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.authorize(w, user.ID)
}

// Login вход пользователя.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r)
	if err != nil {
		h.Logger.Warnw("Login: invalid request", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	user, err := h.UserService.Login(r.Context(), c.Login, c.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		http.Error(w, "invalid login or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.Logger.Errorw("Login: service error", "login", c.Login, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.authorize(w, user.ID)
}

func (h *UserHandler) authorize(w http.ResponseWriter, userID int64) {
	if err := middleware.SetLoginCookie(w, userID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("failed to set auth cookie", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}

// Status сообщает, под каким пользователем выполнен запрос.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	result := "anonymous"
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		result = fmt.Sprintf("User ID = %d", id)
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}
