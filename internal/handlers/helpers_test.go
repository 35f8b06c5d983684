package handlers_test

import (
	"HomeStock/internal/config"
	"HomeStock/internal/handlers"
	"HomeStock/internal/middleware"
	"HomeStock/internal/repo"
	"HomeStock/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserID int64 = 7

// testEnv: роутер поверх in-memory SQLite; пользователи приходят из мока.
type testEnv struct {
	router http.Handler
	cfg    *config.Config
}

func newTestEnv(t *testing.T, ur repo.UserRepository, policy string) *testEnv {
	t.Helper()
	cfg := &config.Config{
		AuthSecret:      "test-secret",
		PageSize:        5,
		ImageMaxSizeMB:  1,
		DecrementPolicy: policy,
	}
	logger := zap.NewNop().Sugar()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	items := repo.NewItemRepository(db)
	catalog := service.NewCatalogService(repo.NewListRepository(db), items, repo.NewImageRepository(db), cfg.PageSize, logger)
	ledger := service.NewLedgerService(items, service.ParseDecrementPolicy(cfg.DecrementPolicy), logger)

	h := handlers.NewHandler(service.NewUserService(ur), catalog, ledger, logger, cfg)
	return &testEnv{router: h.Router, cfg: cfg}
}

func newTestRouter(t *testing.T, ur repo.UserRepository) http.Handler {
	t.Helper()
	return newTestEnv(t, ur, config.PolicyClamp).router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	require.NoError(t, middleware.SetLoginCookie(rr, userID, secret))
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// do выполняет запрос от имени testUserID.
func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	addAuthCookie(t, req, testUserID, e.cfg.AuthSecret)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v), rr.Body.String())
	return v
}

type listResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type itemResp struct {
	ID             int64   `json:"id"`
	ListID         *int64  `json:"list_id"`
	Name           string  `json:"name"`
	QuantityAtHome int64   `json:"quantity_at_home"`
	QuantityToBuy  int64   `json:"quantity_to_buy"`
	Price          *string `json:"price"`
	TotalCost      string  `json:"total_cost"`
	Version        int64   `json:"version"`
}

type pageResp[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Pages    int   `json:"pages"`
	Total    int64 `json:"total"`
}

func (e *testEnv) createList(t *testing.T, name string) listResp {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/api/lists", fmt.Sprintf(`{"name":%q}`, name))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[listResp](t, rr)
}

func (e *testEnv) createItem(t *testing.T, body string) itemResp {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/api/items", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[itemResp](t, rr)
}
