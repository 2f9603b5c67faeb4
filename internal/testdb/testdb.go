// Package testdb provides isolated in-memory databases for package tests.
package testdb

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Schema is the products table DDL in sqlite dialect, mirroring the
// production statement in internal/infrastructure/database.
const Schema = `
CREATE TABLE products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ext_id INTEGER,
  name TEXT NOT NULL,
  category TEXT,
  price DECIMAL(10,2) NOT NULL,
  image TEXT,
  stock INTEGER DEFAULT 0,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// Open returns an empty in-memory database unique to the calling test.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// OpenWithProducts returns an in-memory database with the products table
// already created.
func OpenWithProducts(t *testing.T) *gorm.DB {
	t.Helper()
	db := Open(t)
	if err := db.Exec(Schema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}
