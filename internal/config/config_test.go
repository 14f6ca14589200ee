package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.UserID)
	assert.Equal(t, "America/Mexico_City", cfg.Timezone)
	assert.Equal(t, 5, cfg.MinutesPerCompletion)
	assert.NotNil(t, cfg.Location())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CULTIVA_USER", "maria")
	t.Setenv("CULTIVA_TIMEZONE", "UTC")
	t.Setenv("CULTIVA_MINUTES_PER_COMPLETION", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "maria", cfg.UserID)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 10, cfg.MinutesPerCompletion)
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("CULTIVA_TIMEZONE", "Marte/Olympus")
	_, err := Load()
	require.Error(t, err)
}
