package handlers

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/bistro-systems/table-reserve/internal/db"
	"github.com/bistro-systems/table-reserve/internal/models"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))

	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
}

// The sqlite driver used in tests does not translate to gorm.ErrDuplicatedKey,
// so the raw error produced by a real duplicate insert must still match.
func TestIsUniqueViolationMatchesDriverError(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, dbpkg.Migrate(db))

	user := models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	dup := models.User{Name: "Other Alice", Email: "alice@example.com", PasswordHash: "x"}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))
}
