package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/huepick/internal/models"
)

// Get returns the value stored under key. ok is false when the key does not exist.
func (s *Store) Get(key string) (string, bool, error) {
	var entry models.Entry

	err := s.db.Where(keyIs(key)).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil // Missing key is not an error
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	return entry.Value, true, nil
}

// Set creates or overwrites the entry for key
func (s *Store) Set(key, value string) error {
	entry := models.Entry{Key: key, Value: value}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}

	return nil
}

// Delete removes the entry for key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.db.Where(keyIs(key)).Delete(&models.Entry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in alphabetical order
func (s *Store) Keys() ([]string, error) {
	var entries []models.Entry

	err := s.db.Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys, nil
}

// keyIs builds a quoted condition on the key column, which is an SQL keyword
func keyIs(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}
