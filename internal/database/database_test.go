package database

import (
	"path/filepath"
	"testing"
	"time"

	"cinematic-vault/internal/config"
	"cinematic-vault/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func testConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:       "sqlite",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 2 * time.Second,
	}
}

func TestOpenCreatesSchemaIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db")

	db, err := Open(sqlite.Open(path), testConfig())
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&models.Movie{}))
	require.NoError(t, db.Create(&models.Movie{Title: "Alien", Director: "Ridley Scott", ReleaseYear: 1979, Language: "English", Rating: 8.5, Genre: "Horror", Runtime: 117}).Error)
	require.NoError(t, db.Close())

	reopened, err := Open(sqlite.Open(path), testConfig())
	require.NoError(t, err)
	defer reopened.Close()

	var count int64
	require.NoError(t, reopened.Model(&models.Movie{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, reopened.HealthCheck())
	assert.Equal(t, 2*time.Second, reopened.GetQueryTimeout())
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{Database: testConfig()}
	cfg.Database.Driver = "oracle"

	_, err := Connect(cfg)
	assert.ErrorContains(t, err, "unsupported database driver")
}
