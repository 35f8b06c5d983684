package model

import (
	"strings"

	"gorm.io/gorm"
)

// FoldName приводит имя к виду, по которому идёт поиск без учёта регистра.
// SQLite LOWER() понимает только ASCII, поэтому свёртка делается в Go.
func FoldName(s string) string {
	return strings.ToLower(s)
}

func (l *List) BeforeSave(*gorm.DB) error {
	l.NameFold = FoldName(l.Name)
	return nil
}

func (it *Item) BeforeSave(*gorm.DB) error {
	it.NameFold = FoldName(it.Name)
	return nil
}
