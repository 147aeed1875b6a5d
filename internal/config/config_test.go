package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("VAULT_DB_PATH", "")

	cfg := Load()

	assert.Equal(t, "8010", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "cinematic_vault.db", cfg.Database.Path)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.MinIO.Enabled)
	assert.True(t, cfg.Export.Enabled)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "cinematic_vault.db", cfg.GetDSN())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Contains(t, cfg.GetDSN(), "host=db.internal")
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.MinIO.Enabled = true
	cfg.MinIO.AccessKeyID = ""
	assert.ErrorContains(t, cfg.Validate(), "AWS_ACCESS_KEY_ID")
}
