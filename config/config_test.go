package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		require.Equal(t, []string{"Player1", "Player2"}, cfg.Players)
		require.Zero(t, cfg.Seed)
		require.False(t, cfg.SharedLocks)
		require.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("QWIXX_PLAYERS", "ann,bo,cy")
		t.Setenv("QWIXX_SEED", "42")
		t.Setenv("QWIXX_SHARED_LOCKS", "true")
		t.Setenv("QWIXX_SHUFFLE", "true")
		t.Setenv("QWIXX_LOG_LEVEL", "debug")
		t.Setenv("QWIXX_RECORDS_DIR", "/tmp/qwixx")

		cfg, err := Load()
		require.NoError(t, err)

		require.Equal(t, Config{
			Players:     []string{"ann", "bo", "cy"},
			Seed:        42,
			SharedLocks: true,
			Shuffle:     true,
			LogLevel:    "debug",
			RecordsDir:  "/tmp/qwixx",
		}, cfg)
	})

	t.Run("bad seed", func(t *testing.T) {
		t.Setenv("QWIXX_SEED", "many")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestLevel(t *testing.T) {
	level, err := Config{LogLevel: "warn"}.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, level)

	_, err = Config{LogLevel: "loud"}.Level()
	require.Error(t, err)
}
