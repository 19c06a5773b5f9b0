package commands

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	fsrepo "ContactHub/internal/cli/repo/fs"
	"ContactHub/internal/cli/service"
	"ContactHub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginStatus(t *testing.T) {
	dir := withTempConfig(t)
	ts := contactServer(t)
	cfg := testConfig(ts.URL)
	cfg.TokenFile = filepath.Join(dir, "tokens", "bob.token")

	out, err := run(t, statusCmd{}, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Status: anonymous")
	assert.NotContains(t, out, "User:")

	out, err = run(t, registerCmd{}, cfg, "bob", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Registered as bob\n", out)

	// токен лежит в TOKEN_FILE, база пользователя создана
	tok, err := os.ReadFile(cfg.TokenFile)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	_, err = os.Stat(filepath.Join(cfg.ClientDBPath, "bob", "client.sqlite"))
	require.NoError(t, err)

	_, err = run(t, registerCmd{}, cfg, "bob", "other")
	assert.ErrorIs(t, err, service.ErrLoginTaken)

	_, err = run(t, loginCmd{}, cfg, "bob", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	out, err = run(t, loginCmd{}, cfg, "bob", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Logged in successfully\n", out)

	require.NoError(t, fsrepo.SaveLastSyncAt("bob", "2026-10-18T09:00:00Z"))
	out, err = run(t, statusCmd{}, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Status: User ID = ")
	assert.Contains(t, out, "Backend: remote")
	assert.Contains(t, out, "User: bob")
	assert.Contains(t, out, "Last sync: 2026-10-18T09:00:00Z")

	// контакты нового пользователя на сервере пусты, локальная копия засеяна
	out, err = run(t, contactsCmd{}, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "No contacts")
	local := *cfg
	local.Backend = config.BackendLocal
	out, err = run(t, contactsCmd{}, &local)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 6")
}

func TestAuthCommands_Usage(t *testing.T) {
	withTempConfig(t)
	cfg := testConfig("http://127.0.0.1:1")
	for _, tc := range []struct {
		cmd  Command
		args []string
	}{
		{loginCmd{}, []string{"bob"}},
		{registerCmd{}, []string{"bob", ""}},
		{statusCmd{}, []string{"extra"}},
		{syncCmd{}, []string{"now"}},
	} {
		_, err := run(t, tc.cmd, cfg, tc.args...)
		assert.ErrorIs(t, err, ErrUsage, tc.cmd.Name())
	}
}

func TestStatus_ServerFailures(t *testing.T) {
	withTempConfig(t)
	for name, h := range map[string]http.HandlerFunc{
		"500": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "db down", http.StatusInternalServerError)
		},
		"bad json": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("{"))
		},
	} {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(h)
			defer ts.Close()
			_, err := run(t, statusCmd{}, testConfig(ts.URL))
			assert.Error(t, err)
		})
	}
	_, err := run(t, statusCmd{}, testConfig("http://127.0.0.1:1"))
	assert.Error(t, err)
}
