package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/sportsday/internal/session"
	sessionModel "github.com/festy23/sportsday/internal/session/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&sessionModel.Entry{})
	require.NoError(t, err)

	return db
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		repo := New(setupTestDB(t))

		v, ok, err := repo.Get(ctx, "sid:token")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("stored key", func(t *testing.T) {
		repo := New(setupTestDB(t))
		require.NoError(t, repo.Set(ctx, "sid:token", "abc"))

		v, ok, err := repo.Get(ctx, "sid:token")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "abc", v)
	})
}

func TestRepository_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Set(ctx, "sid:token", "first"))
	require.NoError(t, repo.Set(ctx, "sid:token", "second"))

	v, ok, err := repo.Get(ctx, "sid:token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	var count int64
	require.NoError(t, db.Model(&sessionModel.Entry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t))

	require.NoError(t, repo.Set(ctx, "sid:token", "abc"))
	require.NoError(t, repo.Set(ctx, "sid:flash", "msg"))
	require.NoError(t, repo.Clear(ctx, "sid:token"))

	_, ok, err := repo.Get(ctx, "sid:token")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := repo.Get(ctx, "sid:flash")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "msg", v)

	// clearing again is fine
	assert.NoError(t, repo.Clear(ctx, "sid:token"))
}

func TestRepository_BacksSession(t *testing.T) {
	ctx := context.Background()
	s := session.New("6a2f41a3-c54c-4f7e-9b5e-0d5f4c3a1b2c", New(setupTestDB(t)))

	assert.False(t, s.IsAdmin(ctx))
	require.NoError(t, s.Login(ctx, "admin-token"))
	assert.True(t, s.IsAdmin(ctx))
	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.IsAdmin(ctx))
}
