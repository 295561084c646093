package database

import (
	"fmt"
	"testing"

	"github.com/aiclub/website-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with every table migrated.
// The pool holds a single connection so concurrent writers queue instead of
// failing with a locked table.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(OpenSQLite(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.Migrate(db), "migrate")
	return db
}

func mustCreate(t testing.TB, db *gorm.DB, value any) {
	t.Helper()
	require.NoError(t, db.Create(value).Error, "create %T", value)
}
