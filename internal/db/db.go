package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/tajtiattila/basedir"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/huepick/internal/models"
)

// Store is a key-value store backed by a SQLite database
type Store struct {
	db *gorm.DB
}

// Open sets up the database connection at path and runs migrations
func Open(path string) (*Store, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.runMigrations(); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// DefaultPath returns the path to the SQLite database file in the user's data directory
func DefaultPath() (string, error) {
	dir, err := basedir.Data.EnsureDir("huepick", 0700)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "huepick.db"), nil
}

// runMigrations creates/updates the database schema
func (s *Store) runMigrations() error {
	return s.db.AutoMigrate(&models.Entry{})
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
