package database

import (
	"estudo_backend/internal/config"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// OpenInMemory opens a migrated, private in-memory SQLite database.
// A single connection keeps the shared-cache database alive and serializes
// transactions the way a row-locking store would.
func OpenInMemory(name string) (*gorm.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	db, err := Open(&config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel:     "silent",
		MaxOpenConns: 1,
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
