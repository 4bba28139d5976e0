package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at a temporary directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv(EnvConfigPath, "")
	for _, key := range []string{KeyCatalogPath, KeyDBPath, KeyStateDir, KeyConfigDir, KeyRevealFrames, KeyLoggingLevel, KeyWatch} {
		// viper ignores empty environment values
		t.Setenv(EnvPrefix+"_"+strings.ToUpper(key), "")
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	Load()

	assert.Equal(t, "default", Get("missing", "default"))
	assert.Equal(t, filepath.Join(dir, "state", "velvetpour"), Get(KeyStateDir, ""))
	assert.Equal(t, filepath.Join(dir, "state", "velvetpour", "catalog.db"), Get(KeyDBPath, ""))
	assert.Equal(t, "hero", Get(KeyStartSection, ""))
	assert.Equal(t, 8, GetInt(KeyRevealFrames, 0))
	assert.Equal(t, 100*time.Millisecond, GetDuration(KeyTextReadyTimeout, 0))
	assert.False(t, GetBool(KeyWatch, true))
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "custom.toml")
	content := "catalog_path = \"/from/file.toml\"\nreveal_frames = 12\nlogging_level = \"debug\"\nwatch = true\n"
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))
	t.Setenv(EnvConfigPath, configFile)
	t.Setenv("VELVETPOUR_REVEAL_FRAMES", "20")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("catalog", "", "")
	flags.Bool("watch", false, "")
	require.NoError(t, flags.Parse([]string{"--catalog", "/from/flag.toml"}))

	Load(
		WithFlag(KeyCatalogPath, flags.Lookup("catalog")),
		WithFlag(KeyWatch, flags.Lookup("watch")),
	)

	assert.Equal(t, "/from/flag.toml", Get(KeyCatalogPath, ""))
	assert.Equal(t, 20, GetInt(KeyRevealFrames, 0))
	assert.Equal(t, "debug", Get(KeyLoggingLevel, ""))
	assert.True(t, GetBool(KeyWatch, false), "unset flag must not override the file")
}

func TestLoadReadsDefaultConfigFile(t *testing.T) {
	dir := isolate(t)
	configDir := filepath.Join(dir, "config", "velvetpour")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("start_section = \"menu\"\n"), 0o644))

	Load()

	assert.Equal(t, "menu", Get(KeyStartSection, ""))
}

func TestLoadFallsBackOnInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("VELVETPOUR_REVEAL_FRAMES", "-3")
	t.Setenv("VELVETPOUR_START_SECTION", "cellar")
	t.Setenv("VELVETPOUR_REVEAL_INTERVAL", "soon")
	t.Setenv("VELVETPOUR_WATCH", "maybe")
	t.Setenv("VELVETPOUR_LOGGING_LEVEL", "WARN")

	Load()

	assert.Equal(t, 8, GetInt(KeyRevealFrames, 0))
	assert.Equal(t, "hero", Get(KeyStartSection, ""))
	assert.Equal(t, 60*time.Millisecond, GetDuration(KeyRevealInterval, 0))
	assert.False(t, GetBool(KeyWatch, true))
	assert.Equal(t, "warn", Get(KeyLoggingLevel, ""))
}

func TestWriteSample(t *testing.T) {
	isolate(t)
	Load()
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	created, err := WriteSample(path)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reveal_frames = 8")
	assert.NotContains(t, string(data), "state_dir")

	created, err = WriteSample(path)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestKeysSorted(t *testing.T) {
	isolate(t)
	Load()

	keys := Keys()
	require.NotEmpty(t, keys)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, All(), KeyCatalogPath)
}

func TestValidators(t *testing.T) {
	assert.Panics(t, func() { RegisterValidator(KeyWatch, BoolValidator()) })

	got, err := DurationValidator()("k", "1s", "2s")
	require.NoError(t, err)
	assert.Equal(t, "1s", got)

	got, err = EnumValidator(Sections)("k", "MENU", "hero")
	require.NoError(t, err)
	assert.Equal(t, "menu", got)

	got, err = PositiveIntValidator()("k", "", "5")
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}
