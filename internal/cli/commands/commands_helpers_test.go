package commands

import (
	"HomeStock/internal/config"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// newTestConfig: конфиг CLI с токеном во временном каталоге.
func newTestConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{ServerURL: serverURL, TokenFile: filepath.Join(t.TempDir(), "token")}
}

// newTestServer поднимает httptest-сервер и возвращает конфиг на него.
func newTestServer(t *testing.T, h http.HandlerFunc) *config.Config {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return newTestConfig(t, ts.URL)
}

// loggedIn сохраняет токен, как после успешного login.
func loggedIn(t *testing.T, cfg *config.Config) {
	t.Helper()
	if err := tokenStore(cfg).Save("tok-1"); err != nil {
		t.Fatalf("save token: %v", err)
	}
}
