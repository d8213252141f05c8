// Package dbtest opens throwaway migrated SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reservation-api/internal/config"
	dbpkg "github.com/BruksfildServices01/reservation-api/internal/db"
)

// New returns an isolated in-memory database with the full schema. It is
// closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver: "sqlite",
		DBName:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	db, err := dbpkg.Open(cfg, nil)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, dbpkg.Migrate(db), "failed to migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
