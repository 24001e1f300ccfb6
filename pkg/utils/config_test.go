package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "DB_NAME=films_test\nRATE_LIMIT_REQUESTS=7\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\nCACHE_TTL=5m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("DB_NAME", "films_env")

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "films_env", config.Database.Name)
	assert.Equal(t, 7, config.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, config.RateLimit.Window)
	assert.Equal(t, 5*time.Minute, config.Redis.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.HTTP.CORSAllowedOrigins)
}

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.NotEmpty(t, config.App.Port)
}
