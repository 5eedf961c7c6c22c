package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "info", AppConfig.LogLevel)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.Equal(t, "hotel_booking", AppConfig.DatabaseName)
	assert.Empty(t, AppConfig.DatabaseURL)
	assert.Empty(t, AppConfig.RedisAddr)
	assert.False(t, IsProduction())
}

func TestIsProduction(t *testing.T) {
	orig := AppConfig.Env
	defer func() { AppConfig.Env = orig }()

	AppConfig.Env = "production"
	assert.True(t, IsProduction())

	AppConfig.Env = "staging"
	assert.False(t, IsProduction())
}
