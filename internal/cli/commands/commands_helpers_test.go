package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"ContactHub/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/логин/база) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	db := filepath.Join(dir, "db")
	_ = os.MkdirAll(db, 0o700)
	t.Setenv("CLIENT_DB_PATH", db)
	return dir
}

// testConfig — конфигурация клиента для тестов: сервер serverURL, базы в CLIENT_DB_PATH.
func testConfig(serverURL string) *config.Config {
	return &config.Config{
		ServerURL:      serverURL,
		Backend:        config.BackendRemote,
		ClientDBPath:   os.Getenv("CLIENT_DB_PATH"),
		RequestTimeout: 5 * time.Second,
		SearchDebounce: 10 * time.Millisecond,
	}
}

// withStdoutCapture перенаправляет Out в буфер на время fn.
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
