package model

import "time"

// Image: stored list picture, always re-encoded before saving.
type Image struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	MIME string `gorm:"not null"`
	Data []byte `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
