package models

import "time"

// Link модель хранения короткой ссылки.
//
// Slug и URL уникальны, уникальность обеспечивается индексами хранилища.
// Визиты удаляются каскадно вместе со ссылкой.
type Link struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex:idx_links_slug" json:"slug"`
	URL       string    `gorm:"size:2048;not null;uniqueIndex:idx_links_url" json:"url"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	Visits    []Visit   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
