package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item: inventory unit. ListID is nil for items kept outside any list.
type Item struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	ListID *int64 `gorm:"index"` // reference to lists.id

	Name        string `gorm:"size:255;not null"`
	NameFold    string `gorm:"size:255;not null;default:'';index" json:"-"` // lower-cased Name, kept in sync on save
	Description string

	QuantityAtHome int64               `gorm:"not null;default:0;check:quantity_at_home >= 0"`
	QuantityToBuy  int64               `gorm:"not null;default:0;check:quantity_to_buy >= 0"`
	Price          decimal.NullDecimal `gorm:"type:decimal(10,2)"`

	Version int64 `gorm:"not null;default:1"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// UnitPrice returns the price, treating an unset price as zero.
func (it Item) UnitPrice() decimal.Decimal {
	if !it.Price.Valid {
		return decimal.Zero
	}
	return it.Price.Decimal
}
