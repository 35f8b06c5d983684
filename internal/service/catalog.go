package service

import (
	"HomeStock/internal/imaging"
	"HomeStock/internal/model"
	"HomeStock/internal/repo"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogService: создание, чтение, изменение и удаление списков и элементов.
type CatalogService struct {
	lists    repo.ListRepository
	items    repo.ItemRepository
	images   repo.ImageRepository
	pageSize int
	logger   *zap.SugaredLogger
}

func NewCatalogService(
	lists repo.ListRepository,
	items repo.ItemRepository,
	images repo.ImageRepository,
	pageSize int,
	logger *zap.SugaredLogger,
) *CatalogService {
	if pageSize <= 0 {
		pageSize = 9
	}
	return &CatalogService{lists: lists, items: items, images: images, pageSize: pageSize, logger: logger}
}

// ListQuery: фильтр и страница для списков.
type ListQuery struct {
	Name string
	Page int
}

// ItemQuery: фильтр, сортировка и страница для элементов.
type ItemQuery struct {
	ListID  *int64
	Name    string
	OrderBy string
	Page    int
}

func (s *CatalogService) CreateList(ctx context.Context, in ListInput) (*model.List, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	l := &model.List{Name: strings.TrimSpace(in.Name), Description: in.Description}
	if err := s.lists.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return l, nil
}

func (s *CatalogService) GetList(ctx context.Context, id int64) (*model.List, error) {
	l, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "list", id)
	}
	return l, nil
}

func (s *CatalogService) ListLists(ctx context.Context, q ListQuery) (Page[model.List], error) {
	f := repo.ListFilter{Name: strings.TrimSpace(q.Name)}
	total, err := s.lists.Count(ctx, f)
	if err != nil {
		return Page[model.List]{}, fmt.Errorf("count lists: %w", err)
	}
	page, offset, pages := paginate(total, q.Page, s.pageSize)
	f.Limit, f.Offset = s.pageSize, offset
	rows, err := s.lists.List(ctx, f)
	if err != nil {
		return Page[model.List]{}, fmt.Errorf("list lists: %w", err)
	}
	return Page[model.List]{Items: rows, Page: page, PageSize: s.pageSize, Pages: pages, Total: total}, nil
}

func (s *CatalogService) UpdateList(ctx context.Context, id int64, p ListPatch) (*model.List, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if u := p.updates(); len(u) > 0 {
		if err := s.lists.Update(ctx, id, u); err != nil {
			return nil, notFound(err, "list", id)
		}
	}
	return s.GetList(ctx, id)
}

// DeleteList removes the list along with its items and image.
func (s *CatalogService) DeleteList(ctx context.Context, id int64) error {
	if err := s.lists.Delete(ctx, id); err != nil {
		return notFound(err, "list", id)
	}
	return nil
}

// AttachListImage normalizes the uploaded picture and makes it the list's image.
// The previous image, if any, is removed.
func (s *CatalogService) AttachListImage(ctx context.Context, listID int64, r io.Reader) (*model.List, error) {
	l, err := s.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	res, err := imaging.Process(r)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) || errors.Is(err, imaging.ErrCorrupt) {
			return nil, &ValidationError{Fields: map[string]string{"image": err.Error()}}
		}
		return nil, fmt.Errorf("process image: %w", err)
	}

	id := uuid.NewString()
	if _, err := s.images.CreateIfAbsent(ctx, id, res.MIME, res.Data); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	if err := s.lists.Update(ctx, listID, map[string]any{"image_id": id}); err != nil {
		_ = s.images.Delete(ctx, id)
		return nil, notFound(err, "list", listID)
	}
	if l.ImageID != nil {
		if err := s.images.Delete(ctx, *l.ImageID); err != nil {
			s.logger.Warnw("AttachListImage: old image not removed", "list_id", listID, "image_id", *l.ImageID, "error", err)
		}
	}
	l.ImageID = &id
	return l, nil
}

func (s *CatalogService) GetImage(ctx context.Context, id string) (*model.Image, error) {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "image", id)
	}
	return img, nil
}

func (s *CatalogService) CreateItem(ctx context.Context, in ItemInput) (*model.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.ListID != nil {
		if _, err := s.GetList(ctx, *in.ListID); err != nil {
			return nil, err
		}
	}
	price := decimal.Zero
	if in.Price != nil {
		price = *in.Price
	}
	it := &model.Item{
		ListID:         in.ListID,
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		QuantityAtHome: in.QuantityAtHome,
		QuantityToBuy:  in.QuantityToBuy,
		Price:          decimal.NewNullDecimal(price),
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

func (s *CatalogService) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "item", id)
	}
	return it, nil
}

func (s *CatalogService) ListItems(ctx context.Context, q ItemQuery) (Page[model.Item], error) {
	f, err := s.itemFilter(ctx, q)
	if err != nil {
		return Page[model.Item]{}, err
	}
	total, err := s.items.Count(ctx, f)
	if err != nil {
		return Page[model.Item]{}, fmt.Errorf("count items: %w", err)
	}
	page, offset, pages := paginate(total, q.Page, s.pageSize)
	f.Limit, f.Offset = s.pageSize, offset
	rows, err := s.items.List(ctx, f)
	if err != nil {
		return Page[model.Item]{}, fmt.Errorf("list items: %w", err)
	}
	return Page[model.Item]{Items: rows, Page: page, PageSize: s.pageSize, Pages: pages, Total: total}, nil
}

// AllItems returns every item, or every item of one list, without paging.
func (s *CatalogService) AllItems(ctx context.Context, listID *int64) ([]model.Item, error) {
	f, err := s.itemFilter(ctx, ItemQuery{ListID: listID})
	if err != nil {
		return nil, err
	}
	rows, err := s.items.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return rows, nil
}

func (s *CatalogService) itemFilter(ctx context.Context, q ItemQuery) (repo.ItemFilter, error) {
	switch q.OrderBy {
	case "", repo.ItemOrderID, repo.ItemOrderName, repo.ItemOrderQuantity:
	default:
		return repo.ItemFilter{}, &ValidationError{Fields: map[string]string{"order": "unknown ordering " + q.OrderBy}}
	}
	if q.ListID != nil {
		if _, err := s.GetList(ctx, *q.ListID); err != nil {
			return repo.ItemFilter{}, err
		}
	}
	return repo.ItemFilter{ListID: q.ListID, Name: strings.TrimSpace(q.Name), OrderBy: q.OrderBy}, nil
}

// UpdateItem applies the patch guarded by the item version.
func (s *CatalogService) UpdateItem(ctx context.Context, id int64, p ItemPatch) (*model.Item, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.ListID != nil {
		if _, err := s.GetList(ctx, *p.ListID); err != nil {
			return nil, err
		}
	}
	cur, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	expected := cur.Version
	if p.Version != nil {
		if *p.Version != cur.Version {
			return nil, fmt.Errorf("%w: item %d is at version %d", ErrConflict, id, cur.Version)
		}
		expected = *p.Version
	}
	if _, err := s.items.UpdateWithVersion(ctx, id, expected, p.updates()); err != nil {
		if errors.Is(err, repo.ErrVersionConflict) {
			return nil, fmt.Errorf("%w: item %d", ErrConflict, id)
		}
		return nil, notFound(err, "item", id)
	}
	return s.GetItem(ctx, id)
}

func (s *CatalogService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return notFound(err, "item", id)
	}
	return nil
}
