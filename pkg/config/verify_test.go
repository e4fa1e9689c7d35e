package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Database.DSN = "file:test.db"
	cfg.Telegram.Token = "123:abc"
	cfg.Telegram.RatePerSec = 25
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, VerifyAgainstEmbeddedSchema(validTestConfig()))
	})

	t.Run("missing listen", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("missing timeout", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Server.Timeout = 0
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.timeout is required")
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Telegram.Token = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telegram.token is required")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	def, ok := schema.Definitions["Config"]
	require.True(t, ok, "schema must contain the Config definition")
	assert.NotNil(t, def.Properties)
}
