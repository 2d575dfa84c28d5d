package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:            "development",
			Port:           "8080",
			JWTSecret:      "secure-secret-at-least-32-chars-long",
			TokenTTLHours:  24,
			DBPassword:     "secure-password",
			DBSSLMode:      "disable",
			RedisURL:       "localhost:6379",
			AllowedOrigins: "http://localhost:3000",
		}
	}

	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		c := base()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())
	})

	t.Run("zero token ttl", func(t *testing.T) {
		c := base()
		c.TokenTTLHours = 0
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default jwt secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default db password", func(t *testing.T) {
		c := base()
		c.Env = "prod"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})

	t.Run("production accepts hardened config", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.DBSSLMode = "require"
		assert.NoError(t, c.Validate())
	})
}
