package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE restaurants (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL,
			city TEXT
		)`,
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL
		)`,
		`CREATE TABLE menu_categories (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			name TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE menu_items (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			category_id TEXT,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC NOT NULL,
			is_available INTEGER NOT NULL DEFAULT 1,
			diet_tag TEXT
		)`,
		`CREATE TABLE tables (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			label TEXT NOT NULL,
			code TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			table_id TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			notes TEXT
		)`,
		`CREATE TABLE order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			menu_item_id TEXT NOT NULL,
			menu_item_name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price NUMERIC NOT NULL,
			amount NUMERIC NOT NULL,
			special_instructions TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}
