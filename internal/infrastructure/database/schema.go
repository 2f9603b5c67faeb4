package database

import (
	"fmt"

	"gorm.io/gorm"
)

// The sole DDL this service runs. Safe to execute on every startup.
const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
  id SERIAL PRIMARY KEY,
  ext_id INTEGER,
  name TEXT NOT NULL,
  category TEXT,
  price DECIMAL(10,2) NOT NULL,
  image TEXT,
  stock INTEGER DEFAULT 0,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// EnsureSchema creates the products table if it does not exist yet.
func EnsureSchema(db *gorm.DB) error {
	if err := db.Exec(createProductsTable).Error; err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}
