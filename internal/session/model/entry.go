// Package model defines the persisted form of session entries.
package model

import "time"

// Entry is one session key/value pair.
type Entry struct {
	Key       string    `gorm:"primaryKey;column:entry_key;size:255"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for Entry.
func (Entry) TableName() string {
	return "session_entries"
}
