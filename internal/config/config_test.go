package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"CACHE_DB", "CONTEXT_TIMEOUT", "BLOOM_FILTER_SIZE", "SERVER_ADDRESS", "AUTO_MIGRATE", "DATABASE_TZ"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, defaultAddress, cfg.ServerAddress)
	assert.Equal(t, defaultCacheDB, cfg.Cache.DB)
	assert.Equal(t, defaultTimeout*time.Second, cfg.ContextTimeout)
	assert.Equal(t, uint64(defaultBloomBitSize), cfg.BloomBitSize)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, defaultTimezone, cfg.Database.Timezone)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_PORT", "3306")
	t.Setenv("DATABASE_USER", "blog")
	t.Setenv("DATABASE_PASS", "secret")
	t.Setenv("DATABASE_NAME", "blog")
	t.Setenv("DATABASE_TZ", "UTC")
	t.Setenv("CACHE_HOST", "cache")
	t.Setenv("CACHE_PORT", "6379")
	t.Setenv("CACHE_DB", "2")
	t.Setenv("CONTEXT_TIMEOUT", "5")
	t.Setenv("BLOOM_FILTER_SIZE", "1024")
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg := FromEnv()
	assert.Equal(t, "cache:6379", cfg.Cache.Addr())
	assert.Equal(t, 2, cfg.Cache.DB)
	assert.Equal(t, 5*time.Second, cfg.ContextTimeout)
	assert.Equal(t, uint64(1024), cfg.BloomBitSize)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.True(t, cfg.AutoMigrate)

	dsn := cfg.Database.DSN()
	assert.True(t, strings.HasPrefix(dsn, "blog:secret@tcp(db:3306)/blog?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
}
