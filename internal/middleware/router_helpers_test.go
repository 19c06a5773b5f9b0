package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ContactHub/internal/query"
	"ContactHub/internal/records"

	"github.com/go-chi/chi/v5"
)

var testContacts = []records.Contact{
	{ID: 1, Name: "Sarah Johnson", FirstName: "Sarah", LastName: "Johnson"},
	{ID: 2, Name: "Linda Johnson", FirstName: "Linda", LastName: "Johnson"},
	{ID: 3, Name: "Michael Chen", FirstName: "Michael", LastName: "Chen"},
}

// recordsRouter собирает цепочку мидлварей как у сервера и маленький /api/records.
// fetch понимает только условие Eq по lastName_c.
func recordsRouter(t *testing.T, secret string) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Use(WithGzip)
	r.Use(WithLogging)
	r.Use(WithAuth(secret))
	r.Route("/api/records", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, ok := GetUserIDFromContext(r.Context()); !ok {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r)
			})
		})
		r.Post("/contacts/fetch", func(w http.ResponseWriter, r *http.Request) {
			var q query.Query
			if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
				http.Error(w, "invalid query", http.StatusBadRequest)
				return
			}
			out := records.FetchResponse[records.Contact]{Success: true, Data: []records.Contact{}}
			for _, c := range testContacts {
				if matches(q, c) {
					out.Data = append(out.Data, c)
				}
			}
			out.Total = len(out.Data)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(out)
		})
		r.Get("/contacts/{id}", func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "id") == "500" {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			http.Error(w, "not found", http.StatusNotFound)
		})
	})
	return r
}

func matches(q query.Query, c records.Contact) bool {
	for _, cond := range q.Where {
		if cond.FieldName != "lastName_c" || len(cond.Values) == 0 {
			continue
		}
		v, _ := cond.Values[0].(string)
		if !strings.EqualFold(v, c.LastName) {
			return false
		}
	}
	return true
}

// authCookie выпускает cookie для userID через SetLoginCookie.
func authCookie(t *testing.T, userID int64, secret string) *http.Cookie {
	t.Helper()
	rr := httptest.NewRecorder()
	if err := SetLoginCookie(rr, userID, secret); err != nil {
		t.Fatalf("SetLoginCookie: %v", err)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("want one cookie, got %d", len(cookies))
	}
	return cookies[0]
}
