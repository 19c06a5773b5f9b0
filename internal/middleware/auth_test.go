package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLoginCookie_Attributes(t *testing.T) {
	c := authCookie(t, 42, "s")
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.WithinDuration(t, time.Now().Add(tokenTTL), c.Expires, time.Minute)

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(c.Value, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func signed(t *testing.T, method jwt.SigningMethod, key any, claims Claims) *http.Cookie {
	t.Helper()
	v, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return &http.Cookie{Name: CookieName, Value: v}
}

func TestWithAuth_RecordsRoutes(t *testing.T) {
	h := recordsRouter(t, "s")
	expired := Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
		UserID:           7,
	}
	live := Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           7,
	}

	tests := []struct {
		name   string
		cookie *http.Cookie
		want   int
	}{
		{name: "valid cookie", cookie: authCookie(t, 7, "s"), want: http.StatusOK},
		{name: "no cookie", want: http.StatusUnauthorized},
		{name: "other secret", cookie: authCookie(t, 7, "other"), want: http.StatusUnauthorized},
		{name: "expired", cookie: signed(t, jwt.SigningMethodHS256, []byte("s"), expired), want: http.StatusUnauthorized},
		{name: "alg none", cookie: signed(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, live), want: http.StatusUnauthorized},
		{name: "garbage", cookie: &http.Cookie{Name: CookieName, Value: "not.a.jwt"}, want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/records/contacts/fetch", strings.NewReader(`{}`))
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestWithAuth_AnonymousOutsideRecords(t *testing.T) {
	var seen []bool
	h := WithAuth("s")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetUserIDFromContext(r.Context())
		seen = append(seen, ok)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/user/test", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	req = httptest.NewRequest(http.MethodPost, "/api/user/test", nil)
	req.AddCookie(authCookie(t, 9, "wrong"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	// хендлер вызывается в обоих случаях, user_id не выставлен
	assert.Equal(t, []bool{false, false}, seen)
}
