// Package repository stores session entries with gorm.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/sportsday/internal/session"
	sessionModel "github.com/festy23/sportsday/internal/session/model"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed session storage.
func New(db *gorm.DB) session.Storage {
	return &repository{db: db}
}

// Get returns the value stored under key.
func (r *repository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry sessionModel.Entry
	err := r.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set upserts key.
func (r *repository) Set(ctx context.Context, key, value string) error {
	entry := sessionModel.Entry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Clear deletes key.
func (r *repository) Clear(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&sessionModel.Entry{}).Error
}
