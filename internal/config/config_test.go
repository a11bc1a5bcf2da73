package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load()
	require.NoError(t, err)

	assert.Empty(t, settings.Endpoint)
	assert.Empty(t, settings.Region)
	assert.Empty(t, settings.Profile)
	assert.Empty(t, settings.ChecksumPolicy)
	assert.Equal(t, 300, settings.ReadTimeout)
	assert.Equal(t, 3, settings.MaxRetries)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("S3CLIENT_ENDPOINT", "https://storage.example.com")
	t.Setenv("S3CLIENT_REGION", "eu-west-1")
	t.Setenv("S3CLIENT_PROFILE", "staging")
	t.Setenv("S3CLIENT_CHECKSUM_POLICY", "when_required")
	t.Setenv("S3CLIENT_READ_TIMEOUT", "60")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://storage.example.com", settings.Endpoint)
	assert.Equal(t, "eu-west-1", settings.Region)
	assert.Equal(t, "staging", settings.Profile)
	assert.Equal(t, "when_required", settings.ChecksumPolicy)
	assert.Equal(t, 60, settings.ReadTimeout)
	assert.Equal(t, 3, settings.MaxRetries)
}
