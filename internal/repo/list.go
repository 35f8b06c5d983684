package repo

import (
	"HomeStock/internal/model"
	"context"

	"gorm.io/gorm"
)

// ListFilter: параметры выборки списков.
type ListFilter struct {
	Name   string // case-insensitive substring of the name
	Limit  int    // 0 means no limit
	Offset int
}

// ListRepository определяет контракт доступа к List для слоя сервиса.
type ListRepository interface {
	Create(ctx context.Context, l *model.List) error
	// GetByID returns gorm.ErrRecordNotFound when the list does not exist.
	GetByID(ctx context.Context, id int64) (*model.List, error)
	List(ctx context.Context, f ListFilter) ([]model.List, error)
	Count(ctx context.Context, f ListFilter) (int64, error)
	// Update applies column updates; gorm.ErrRecordNotFound if no row matched.
	Update(ctx context.Context, id int64, updates map[string]any) error
	// Delete removes the list together with its items and image in one transaction.
	Delete(ctx context.Context, id int64) error
}

type listRepo struct {
	db *gorm.DB
}

// NewListRepository создаёт реализацию репозитория для List.
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepo{db: db}
}

func (r *listRepo) Create(ctx context.Context, l *model.List) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *listRepo) GetByID(ctx context.Context, id int64) (*model.List, error) {
	var l model.List
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listRepo) scoped(ctx context.Context, f ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.List{})
	if f.Name != "" {
		q = q.Where(nameLikeClause, likePattern(f.Name))
	}
	return q
}

func (r *listRepo) List(ctx context.Context, f ListFilter) ([]model.List, error) {
	q := r.scoped(ctx, f).Order("id ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var out []model.List
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *listRepo) Count(ctx context.Context, f ListFilter) (int64, error) {
	var n int64
	err := r.scoped(ctx, f).Count(&n).Error
	return n, err
}

func (r *listRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.List{}).Where("id = ?", id).Updates(withNameFold(updates))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete: сначала дочерние записи, затем сам список.
func (r *listRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var l model.List
		if err := tx.Where("id = ?", id).First(&l).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", id).Delete(&model.Item{}).Error; err != nil {
			return err
		}
		if l.ImageID != nil {
			if err := tx.Where("id = ?", *l.ImageID).Delete(&model.Image{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&model.List{}).Error
	})
}
