package models

import (
	"time"
)

// Entry is one key-value pair in the persistent store
type Entry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
