package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("VOTES_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnv("VOTES_TEST_VALUE", "default"))
	assert.Equal(t, "default", GetEnv("VOTES_TEST_MISSING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("VOTES_TEST_INT", "42")
	t.Setenv("VOTES_TEST_BAD_INT", "many")

	assert.Equal(t, 42, GetEnvInt("VOTES_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("VOTES_TEST_BAD_INT", 7))
	assert.Equal(t, 7, GetEnvInt("VOTES_TEST_MISSING_INT", 7))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	Load()

	assert.Equal(t, "./data/votes.db", AppConfig.DBPath)
	assert.Equal(t, 200, AppConfig.RateLimitPerMinute)
}
