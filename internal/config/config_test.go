package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/seabattle/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, StageDev, cfg.Stage)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.SpectatorEnabled())
	assert.False(t, cfg.AnalyticsEnabled())
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SEED", "42")
	t.Setenv("SPECTATOR_PORT", "9191")
	t.Setenv("DATABASE_URL", "postgres://localhost/battleship")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.SpectatorEnabled())
	assert.Equal(t, 9191, cfg.SpectatorPort)
	assert.True(t, cfg.AnalyticsEnabled())
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SEED=7\n"), 0o600))
	// registers the cleanup that removes what godotenv sets
	t.Setenv("SEED", "")
	os.Unsetenv("SEED")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadInvalidStage(t *testing.T) {
	t.Setenv("STAGE", "staging")

	_, err := Load(missingEnvFile(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerr.ErrInvalidStage))
}

func TestLoadInvalidSeed(t *testing.T) {
	t.Setenv("SEED", "not-an-int")

	_, err := Load(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLevelFallsBackToInfo(t *testing.T) {
	cfg := Config{LogLevel: "loud"}
	assert.Equal(t, log.InfoLevel, cfg.Level())
}
