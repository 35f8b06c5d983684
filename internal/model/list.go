package model

import "time"

// List: named container of items. Deleting a list removes its items.
type List struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	NameFold    string `gorm:"size:255;not null;default:'';index" json:"-"` // lower-cased Name, kept in sync on save
	Description string

	ImageID *string `gorm:"type:uuid;index"` // optional reference to images.id

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
