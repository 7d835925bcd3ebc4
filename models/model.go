package models

import "time"

// Model is the common primary key and bookkeeping columns.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Blacklist holds session tokens invalidated by logout.
type Blacklist struct {
	Model
	Token string `gorm:"size:512;uniqueIndex;not null" json:"-"`
}
