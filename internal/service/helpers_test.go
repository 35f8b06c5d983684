package service

import (
	"HomeStock/internal/model"
	"HomeStock/internal/repo"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// мок для repo.ItemRepository
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		// копия, чтобы сервис не менял фикстуру между повторами
		cp := *v
		return &cp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) List(ctx context.Context, f repo.ItemFilter) ([]model.Item, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Count(ctx context.Context, f repo.ItemFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockItemRepo) UpdateWithVersion(ctx context.Context, id int64, expectedVersion int64, updates map[string]any) (int64, error) {
	args := m.Called(ctx, id, expectedVersion, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

func nopLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

// newTestCatalog собирает CatalogService поверх in-memory SQLite.
func newTestCatalog(t *testing.T, pageSize int) *CatalogService {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(fmt.Sprintf("file:service_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewCatalogService(repo.NewListRepository(db), repo.NewItemRepository(db), repo.NewImageRepository(db), pageSize, nopLogger())
}

func ptr[T any](v T) *T { return &v }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
