package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "bookshelf", cfg.Database.DBName)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.BookTTL)
	assert.Equal(t, 1, cfg.Pagination.DefaultPage)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, "localhost:4317", cfg.Tracing.Endpoint)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BOOKSHELF_SERVER_PORT", "9090")
	t.Setenv("BOOKSHELF_DATABASE_PASSWORD", "secret")
	t.Setenv("BOOKSHELF_CACHE_ENABLED", "true")
	t.Setenv("BOOKSHELF_CACHE_AUTHOR_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.AuthorTTL)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"端口越界", "BOOKSHELF_SERVER_PORT", "70000"},
		{"默认limit为0", "BOOKSHELF_PAGINATION_DEFAULT_LIMIT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		User: "root", Password: "pw", Host: "db", Port: 3306, DBName: "bookshelf",
		Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
	}
	assert.Equal(t, "root:pw@tcp(db:3306)/bookshelf?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai", d.DSN())
}
