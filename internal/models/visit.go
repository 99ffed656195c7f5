package models

import "time"

// Visit факт перехода по короткой ссылке.
type Visit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LinkID    uint      `gorm:"not null;index:idx_visits_link_id" json:"linkID"`
	CreatedAt time.Time `gorm:"not null;index:idx_visits_created_at" json:"createdAt"`
}
