package handlers

import (
	"ContactHub/internal/config"
	"ContactHub/internal/middleware"
	"ContactHub/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	contactService *service.ContactService,
	categoryService *service.CategoryService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	contactHandler := NewContactHandler(contactService, logger)
	categoryHandler := NewCategoryHandler(categoryService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/test", userHandler.Status)

	// Record routes
	r.Route("/api/records", func(r chi.Router) {
		r.Use(requireUser)

		r.Post("/contacts/fetch", contactHandler.Fetch)
		r.Get("/contacts/{id}", contactHandler.Get)
		r.Post("/contacts", contactHandler.Create)
		r.Patch("/contacts", contactHandler.Update)
		r.Delete("/contacts", contactHandler.Delete)
		r.Post("/contacts/{id}/toggle-favorite", contactHandler.ToggleFavorite)

		r.Post("/categories/fetch", categoryHandler.Fetch)
		r.Get("/categories/{id}", categoryHandler.Get)
		r.Post("/categories", categoryHandler.Create)
	})

	r.Handle("/metrics", promhttp.Handler())

	return &Handler{Router: r}
}

// requireUser отклоняет запросы без авторизации.
func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
			writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Message: "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// envelope — ответ об ошибке уровня запроса.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
