package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("NOTIF_STORE", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.NotifStore)
	assert.Equal(t, "bookingtrack", cfg.MongoDB)
	assert.Equal(t, "secret", cfg.JWTRefreshSecret) // falls back to the access secret
}

func TestLoadConfigExplicitValues(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_REFRESH_SECRET", "other")
	t.Setenv("PORT", "9090")
	t.Setenv("NOTIF_STORE", "mongo")
	t.Setenv("MONGO_DB", "tracking")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongo", cfg.NotifStore)
	assert.Equal(t, "tracking", cfg.MongoDB)
	assert.Equal(t, "other", cfg.JWTRefreshSecret)
}
