package service

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxNameLen = 255

// Price is stored as decimal(10,2).
var maxPrice = decimal.New(1, 8)

// ListInput: поля для создания списка.
type ListInput struct {
	Name        string
	Description string
}

// Validate checks the input without touching storage.
func (in ListInput) Validate() error {
	v := &ValidationError{}
	checkName(v, in.Name)
	return v.errOrNil()
}

// ListPatch: частичное обновление списка; nil означает «не менять».
type ListPatch struct {
	Name        *string
	Description *string
}

func (p ListPatch) Validate() error {
	v := &ValidationError{}
	if p.Name != nil {
		checkName(v, *p.Name)
	}
	return v.errOrNil()
}

func (p ListPatch) updates() map[string]any {
	u := make(map[string]any)
	if p.Name != nil {
		u["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		u["description"] = *p.Description
	}
	return u
}

// ItemInput: поля для создания элемента. ListID nil, элемент вне списков.
type ItemInput struct {
	ListID         *int64
	Name           string
	Description    string
	QuantityAtHome int64
	QuantityToBuy  int64
	Price          *decimal.Decimal // nil stores 0
}

func (in ItemInput) Validate() error {
	v := &ValidationError{}
	checkName(v, in.Name)
	checkQuantity(v, "quantity_at_home", in.QuantityAtHome)
	checkQuantity(v, "quantity_to_buy", in.QuantityToBuy)
	if in.Price != nil {
		checkPrice(v, *in.Price)
	}
	return v.errOrNil()
}

// ItemPatch: частичное обновление элемента.
// Version, если задана, должна совпасть с текущей версией записи.
type ItemPatch struct {
	ListID         *int64
	DetachList     bool
	Name           *string
	Description    *string
	QuantityAtHome *int64
	QuantityToBuy  *int64
	Price          *decimal.Decimal
	Version        *int64
}

func (p ItemPatch) Validate() error {
	v := &ValidationError{}
	if p.Name != nil {
		checkName(v, *p.Name)
	}
	if p.QuantityAtHome != nil {
		checkQuantity(v, "quantity_at_home", *p.QuantityAtHome)
	}
	if p.QuantityToBuy != nil {
		checkQuantity(v, "quantity_to_buy", *p.QuantityToBuy)
	}
	if p.Price != nil {
		checkPrice(v, *p.Price)
	}
	if p.ListID != nil && p.DetachList {
		v.add("list_id", "cannot set and detach list at once")
	}
	if p.Version != nil && *p.Version < 1 {
		v.add("version", "must be positive")
	}
	return v.errOrNil()
}

func (p ItemPatch) updates() map[string]any {
	u := make(map[string]any)
	switch {
	case p.DetachList:
		u["list_id"] = nil
	case p.ListID != nil:
		u["list_id"] = *p.ListID
	}
	if p.Name != nil {
		u["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		u["description"] = *p.Description
	}
	if p.QuantityAtHome != nil {
		u["quantity_at_home"] = *p.QuantityAtHome
	}
	if p.QuantityToBuy != nil {
		u["quantity_to_buy"] = *p.QuantityToBuy
	}
	if p.Price != nil {
		u["price"] = decimal.NewNullDecimal(*p.Price)
	}
	return u
}

func checkName(v *ValidationError, name string) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		v.add("name", "required")
	case utf8.RuneCountInString(name) > maxNameLen:
		v.add("name", "must be at most 255 characters")
	}
}

func checkQuantity(v *ValidationError, field string, q int64) {
	if q < 0 {
		v.add(field, "must not be negative")
	}
}

func checkPrice(v *ValidationError, p decimal.Decimal) {
	switch {
	case p.IsNegative():
		v.add("price", "must not be negative")
	case !p.Equal(p.Round(2)):
		v.add("price", "at most 2 decimal places")
	case p.GreaterThanOrEqual(maxPrice):
		v.add("price", "too large")
	}
}
