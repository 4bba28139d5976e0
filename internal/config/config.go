// Package config provides configuration loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/velvetpour/internal/colors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"

	// EnvPrefix prefixes every environment override, e.g. VELVETPOUR_CATALOG_PATH.
	EnvPrefix = "VELVETPOUR"
	// EnvConfigPath points at an explicit configuration file.
	EnvConfigPath = EnvPrefix + "_CONFIG"
)

// Configuration keys.
const (
	KeyConfigDir        = "config_dir"
	KeyStateDir         = "state_dir"
	KeyCatalogPath      = "catalog_path"
	KeyDBPath           = "db_path"
	KeyWatch            = "watch"
	KeyStartSection     = "start_section"
	KeyRevealFrames     = "reveal_frames"
	KeyRevealInterval   = "reveal_interval"
	KeyTextReadyTimeout = "text_ready_timeout"
	KeyWrapWidth        = "wrap_width"
	KeyLoggingEnabled   = "logging_enabled"
	KeyLoggingLevel     = "logging_level"
	KeyLoggingMaxFiles  = "logging_max_files"
	KeyDebug            = "debug"
)

var (
	config    map[string]string
	configMap map[string]string
	mu        sync.RWMutex
)

func init() {
	initValidators()
}

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	flags map[string]*pflag.Flag
}

// WithFlag binds a command line flag to a configuration key. The flag only
// overrides the key when it was set explicitly.
func WithFlag(key string, flag *pflag.Flag) LoadOption {
	return func(o *loadOptions) {
		if flag == nil {
			return
		}
		if o.flags == nil {
			o.flags = make(map[string]*pflag.Flag)
		}
		o.flags[key] = flag
	}
}

// Load initializes configuration.
// Precedence, lowest first: defaults, config file, VELVETPOUR_* environment, flags.
func Load(opts ...LoadOption) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	configMap = make(map[string]string)

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, flag := range o.flags {
		if err := v.BindPFlag(key, flag); err != nil {
			colors.Warning(fmt.Sprintf("unable to bind flag %s: %v", flag.Name, err))
		}
	}
	loadFromFile(v)

	for _, key := range keys(configMap) {
		config[key] = v.GetString(key)
	}
	validate()
	computeDirs()
}

// setDefaults populates defaults on v and records them for validation fallbacks.
func setDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	configDir := filepath.Join(xdgConfigHome, "velvetpour")
	stateDir := filepath.Join(xdgStateHome, "velvetpour")

	defaults := map[string]string{
		KeyConfigDir:        configDir,
		KeyStateDir:         stateDir,
		KeyCatalogPath:      "",
		KeyDBPath:           "",
		KeyWatch:            "false",
		KeyStartSection:     "hero",
		KeyRevealFrames:     "8",
		KeyRevealInterval:   "60ms",
		KeyTextReadyTimeout: "100ms",
		KeyWrapWidth:        "72",
		KeyLoggingEnabled:   "false",
		KeyLoggingLevel:     "info",
		KeyLoggingMaxFiles:  "10",
		KeyDebug:            "false",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
		configMap[key] = value
	}
}

// loadFromFile reads the TOML configuration file if one exists.
func loadFromFile(v *viper.Viper) {
	v.SetConfigType("toml")
	configPath := os.Getenv(EnvConfigPath)
	if configPath == "" {
		configPath = filepath.Join(v.GetString(KeyConfigDir), "config"+FileExtTOML)
		if _, err := os.Stat(configPath); err != nil {
			return
		}
	}
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			colors.Debug(fmt.Sprintf("config file %s not found", configPath))
			return
		}
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
	}
}

// validate checks and normalizes configuration values using registered validators.
func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := configMap[key]
		normalizedValue, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
		} else {
			config[key] = normalizedValue
		}
	}
}

// computeDirs fills paths derived from other keys.
func computeDirs() {
	if config[KeyDBPath] == "" && config[KeyStateDir] != "" {
		config[KeyDBPath] = filepath.Join(config[KeyStateDir], "catalog.db")
	}
}

// WriteSample writes the default configuration to path unless a file already exists there.
func WriteSample(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	mu.RLock()
	typed := make(map[string]interface{}, len(configMap))
	for k, v := range configMap {
		if k == KeyConfigDir || k == KeyStateDir {
			continue
		}
		typed[k] = valueToInterface(v)
	}
	mu.RUnlock()

	data, err := toml.Marshal(typed)
	if err != nil {
		return false, fmt.Errorf("marshal sample config: %w", err)
	}
	header := "# velvetpour configuration\n# This file is in TOML format.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), FileModeFile); err != nil {
		return false, fmt.Errorf("write sample config: %w", err)
	}
	return true, nil
}

// DefaultPath returns the configuration file path that Load reads.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(Get(KeyConfigDir, ""), "config"+FileExtTOML)
}

// valueToInterface converts a configuration value to appropriate type for TOML.
func valueToInterface(val string) interface{} {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// All returns a copy of the effective configuration.
func All() map[string]string {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]string, len(config))
	for k, v := range config {
		out[k] = v
	}
	return out
}

// Keys returns the known configuration keys in sorted order.
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()
	return keys(configMap)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// GetDuration returns a configuration value as duration, or default.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok || val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultValue
	}
	return d
}
