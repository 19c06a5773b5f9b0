package api

import (
	fsrepo "ContactHub/internal/cli/repo/fs"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// helper: перенастройка конфиг‑каталога в temp
func setTempCfg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	// и для совместимости с путями клиента
	t.Setenv("CLIENT_DB_PATH", filepath.Join(dir, "db"))
	_ = os.MkdirAll(filepath.Join(dir, "db"), 0o700)
	return dir
}

func TestPostJSON_SendsToken_And_ParsesBody(t *testing.T) {
	setTempCfg(t)
	// test server проверяет cookie и JSON
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c := r.Header.Get("Cookie"); !strings.Contains(c, "auth_token=tok123") {
			t.Fatalf("Cookie header missing token, got: %q", c)
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if m["x"] != float64(1) { // JSON number → float64
			t.Fatalf("unexpected payload: %#v", m)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	resp, body, err := PostJSON(context.Background(), ts.URL+"/api", map[string]any{"x": 1}, "tok123")
	if err != nil {
		t.Fatalf("PostJSON err: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != `{"ok":true}` {
		t.Fatalf("body: %s", string(body))
	}
}

func TestPostJSON_JSONMarshalError(t *testing.T) {
	// chan в payload вызовет ошибку json.Marshal
	_, _, err := PostJSON(context.Background(), "http://example.invalid", map[string]any{"c": make(chan int)}, "")
	if err == nil {
		t.Fatalf("expected marshal error")
	}
}

func TestPersistAuthFromResponse_SaveAndNoCookie(t *testing.T) {
	setTempCfg(t)
	// success: есть Set-Cookie с auth_token
	{
		resp := &http.Response{Header: http.Header{}}
		// Добавим Set-Cookie вручную (http.SetCookie ожидает ResponseWriter)
		resp.Header.Add("Set-Cookie", (&http.Cookie{Name: "auth_token", Value: "tok-abc"}).String())
		if err := PersistAuthFromResponse(resp, fsrepo.AuthFSStore{}); err != nil {
			t.Fatalf("persist: %v", err)
		}
		// проверим, что токен читается из FS
		tok, err := (fsrepo.AuthFSStore{}).Load()
		if err != nil || tok != "tok-abc" {
			t.Fatalf("token not saved, got %q err=%v", tok, err)
		}
	}
	// error: нет cookie
	{
		resp := &http.Response{Header: http.Header{}}
		if err := PersistAuthFromResponse(resp, fsrepo.AuthFSStore{}); err == nil {
			t.Fatalf("expected error when no auth cookie")
		}
	}
}
