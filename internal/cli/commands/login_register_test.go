package commands

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

// --- login tests ---
func TestLogin_Run_SuccessAndErrors(t *testing.T) {
	// HTTP сервер имитирует /api/user/login
	cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/user/login") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		// успех: 200 + Set-Cookie
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-123"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"user_id":1}`))
	})
	cmd := loginCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"alice", "secret"}); err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	// проверим, что токен и логин сохранены
	if tok, err := tokenStore(cfg).Load(); err != nil || tok != "tok-123" {
		t.Fatalf("auth token not saved: %q %v", tok, err)
	}
	if login, err := tokenStore(cfg).LoadLogin(); err != nil || login != "alice" {
		t.Fatalf("login not saved: %q %v", login, err)
	}

	// 401 Unauthorized
	cfg401 := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
	if err := cmd.Run(context.Background(), cfg401, []string{"alice", "bad"}); err == nil {
		t.Fatalf("expected error for 401")
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"onlyLogin"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}

	// server 500 → ошибка
	cfg500 := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	if err := cmd.Run(context.Background(), cfg500, []string{"a", "b"}); err == nil {
		t.Fatalf("expected error for 500")
	}

	// 200 без cookie, сохранять нечего
	cfgNoCookie := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if err := cmd.Run(context.Background(), cfgNoCookie, []string{"a", "b"}); err == nil {
		t.Fatalf("expected error when no cookie returned")
	}
}

// --- register tests ---
func TestRegister_Run_SuccessAndErrors(t *testing.T) {
	cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/user/register") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-xyz"})
		w.WriteHeader(http.StatusOK)
	})
	cmd := registerCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"bob", "pwd"}); err != nil {
		t.Fatalf("register should succeed: %v", err)
	}
	if login, err := tokenStore(cfg).LoadLogin(); err != nil || login != "bob" {
		t.Fatalf("login not saved: %q %v", login, err)
	}

	// 409 Conflict
	cfg409 := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	if err := cmd.Run(context.Background(), cfg409, []string{"bob", "pwd"}); err == nil || !strings.Contains(err.Error(), "already in use") {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"onlyLogin"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}

	// 400 с полями валидации
	cfg400 := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"validation failed","fields":{"password":"required"}}`))
	})
	err := cmd.Run(context.Background(), cfg400, []string{"bob", "x"})
	if err == nil || !strings.Contains(err.Error(), "password: required") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLogout_Run(t *testing.T) {
	called := false
	cfg := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = r.URL.Path == "/api/user/logout"
		w.WriteHeader(http.StatusNoContent)
	})
	loggedIn(t, cfg)

	if err := (logoutCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !called {
		t.Fatalf("server logout not called")
	}
	if _, err := tokenStore(cfg).Load(); err == nil {
		t.Fatalf("token should be removed")
	}

	// сервер недоступен, всё равно выходим локально
	cfgDown := newTestConfig(t, "http://127.0.0.1:1")
	loggedIn(t, cfgDown)
	if err := (logoutCmd{}).Run(context.Background(), cfgDown, nil); err != nil {
		t.Fatalf("logout offline: %v", err)
	}
	if err := (logoutCmd{}).Run(context.Background(), cfgDown, []string{"x"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}
