package service

import (
	"HomeStock/internal/model"
	"HomeStock/internal/repo"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// DecrementPolicy decides what a decrement below zero does.
type DecrementPolicy string

const (
	// PolicyClamp stops at zero and still saves the record.
	PolicyClamp DecrementPolicy = "clamp"
	// PolicyReject fails with ErrInsufficientStock and leaves the record as is.
	PolicyReject DecrementPolicy = "reject"
)

// ParseDecrementPolicy maps a config value to a policy; anything unknown is clamp.
func ParseDecrementPolicy(s string) DecrementPolicy {
	if DecrementPolicy(s) == PolicyReject {
		return PolicyReject
	}
	return PolicyClamp
}

// maxLedgerAttempts bounds the reload-and-retry loop on version conflicts.
const maxLedgerAttempts = 3

// stockField: одно из двух изменяемых количеств элемента.
type stockField struct {
	column string
	get    func(*model.Item) int64
	set    func(*model.Item, int64)
}

var (
	atHomeField = stockField{
		column: "quantity_at_home",
		get:    func(it *model.Item) int64 { return it.QuantityAtHome },
		set:    func(it *model.Item, v int64) { it.QuantityAtHome = v },
	}
	toBuyField = stockField{
		column: "quantity_to_buy",
		get:    func(it *model.Item) int64 { return it.QuantityToBuy },
		set:    func(it *model.Item, v int64) { it.QuantityToBuy = v },
	}
)

// LedgerService: единственная бизнес-логика, меняющая количества.
// Каждая операция читает элемент, меняет один счётчик и записывает его
// с проверкой версии.
type LedgerService struct {
	items  repo.ItemRepository
	policy DecrementPolicy
	logger *zap.SugaredLogger
}

func NewLedgerService(items repo.ItemRepository, policy DecrementPolicy, logger *zap.SugaredLogger) *LedgerService {
	return &LedgerService{items: items, policy: policy, logger: logger}
}

// Policy reports the active decrement policy.
func (s *LedgerService) Policy() DecrementPolicy { return s.policy }

func (s *LedgerService) IncreaseCurrent(ctx context.Context, id, amount int64) (*model.Item, error) {
	return s.adjust(ctx, id, amount, atHomeField, true)
}

func (s *LedgerService) DecreaseCurrent(ctx context.Context, id, amount int64) (*model.Item, error) {
	return s.adjust(ctx, id, amount, atHomeField, false)
}

func (s *LedgerService) IncreaseToBuy(ctx context.Context, id, amount int64) (*model.Item, error) {
	return s.adjust(ctx, id, amount, toBuyField, true)
}

func (s *LedgerService) DecreaseToBuy(ctx context.Context, id, amount int64) (*model.Item, error) {
	return s.adjust(ctx, id, amount, toBuyField, false)
}

func (s *LedgerService) adjust(ctx context.Context, id, amount int64, f stockField, increase bool) (*model.Item, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive integer, got %d", ErrInvalidArgument, amount)
	}

	for attempt := 1; attempt <= maxLedgerAttempts; attempt++ {
		it, err := s.items.GetByID(ctx, id)
		if err != nil {
			return nil, notFound(err, "item", id)
		}

		cur := f.get(it)
		next, err := s.next(cur, amount, increase)
		if err != nil {
			return nil, fmt.Errorf("item %d %s: %w", id, f.column, err)
		}
		if !increase && next != cur-amount {
			s.logger.Debugw("ledger: decrement clamped", "item_id", id, "field", f.column, "current", cur, "amount", amount)
		}

		ver, err := s.items.UpdateWithVersion(ctx, id, it.Version, map[string]any{f.column: next})
		switch {
		case err == nil:
			f.set(it, next)
			it.Version = ver
			it.UpdatedAt = time.Now().UTC()
			return it, nil
		case errors.Is(err, repo.ErrVersionConflict):
			s.logger.Debugw("ledger: version conflict, retrying", "item_id", id, "attempt", attempt)
			continue
		default:
			return nil, notFound(err, "item", id)
		}
	}
	return nil, fmt.Errorf("%w: item %d changed %d times in a row", ErrConflict, id, maxLedgerAttempts)
}

func (s *LedgerService) next(cur, amount int64, increase bool) (int64, error) {
	if increase {
		if cur > math.MaxInt64-amount {
			return 0, fmt.Errorf("%w: quantity would overflow", ErrInvalidArgument)
		}
		return cur + amount, nil
	}
	if amount > cur {
		if s.policy == PolicyReject {
			return 0, fmt.Errorf("%w: have %d, asked to remove %d", ErrInsufficientStock, cur, amount)
		}
		return 0, nil
	}
	return cur - amount, nil
}
