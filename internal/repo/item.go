package repo

import (
	"HomeStock/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// Item orderings accepted by ItemFilter.OrderBy.
const (
	ItemOrderID       = "id"
	ItemOrderName     = "name"
	ItemOrderQuantity = "quantity"
)

// ItemFilter: параметры выборки Item.
type ItemFilter struct {
	ListID  *int64 // only items of this list
	Name    string // case-insensitive substring of the name
	OrderBy string // one of ItemOrder*, defaults to ItemOrderID
	Limit   int    // 0 means no limit
	Offset  int
}

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	// GetByID returns gorm.ErrRecordNotFound when the item does not exist.
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	List(ctx context.Context, f ItemFilter) ([]model.Item, error)
	Count(ctx context.Context, f ItemFilter) (int64, error)

	// UpdateWithVersion applies updates only if the stored version equals
	// expectedVersion, bumps the version and returns the new one.
	// gorm.ErrRecordNotFound if the item is gone, ErrVersionConflict if the
	// version moved on.
	UpdateWithVersion(ctx context.Context, id int64, expectedVersion int64, updates map[string]any) (int64, error)

	Delete(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	if it.Version == 0 {
		it.Version = 1
	}
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) scoped(ctx context.Context, f ItemFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Item{})
	if f.ListID != nil {
		q = q.Where("list_id = ?", *f.ListID)
	}
	if f.Name != "" {
		q = q.Where(nameLikeClause, likePattern(f.Name))
	}
	return q
}

func (r *itemRepo) List(ctx context.Context, f ItemFilter) ([]model.Item, error) {
	q := r.scoped(ctx, f)
	switch f.OrderBy {
	case ItemOrderName:
		q = q.Order("name ASC").Order("id ASC")
	case ItemOrderQuantity:
		q = q.Order("quantity_at_home ASC").Order("id ASC")
	default:
		q = q.Order("id ASC")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var out []model.Item
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *itemRepo) Count(ctx context.Context, f ItemFilter) (int64, error) {
	var n int64
	err := r.scoped(ctx, f).Count(&n).Error
	return n, err
}

func (r *itemRepo) UpdateWithVersion(ctx context.Context, id int64, expectedVersion int64, updates map[string]any) (int64, error) {
	newVersion := expectedVersion + 1
	values := make(map[string]any, len(updates)+3)
	for k, v := range updates {
		values[k] = v
	}
	withNameFold(values)
	values["version"] = newVersion
	values["updated_at"] = time.Now().UTC()

	db := r.db.WithContext(ctx)
	tx := db.Model(&model.Item{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(values)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		var n int64
		if err := db.Model(&model.Item{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, gorm.ErrRecordNotFound
		}
		return 0, ErrVersionConflict
	}
	return newVersion, nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
