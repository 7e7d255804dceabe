package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultDBPath     = "mffit.db"
	defaultStorageKey = "mffit-workouts"
	defaultLogFile    = "mffit.log"
	defaultLogLevel   = "info"
)

type Config struct {
	// storage
	DBPath     string `toml:"db_path"`
	StorageKey string `toml:"storage_key"`
	// logging
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	LogFormatJSON bool   `toml:"log_format_json"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Default() *Config {
	return &Config{
		DBPath:     defaultDBPath,
		StorageKey: defaultStorageKey,
		LogFile:    defaultLogFile,
		LogLevel:   defaultLogLevel,
	}
}

// Load reads the env's table from the TOML file at path. A missing file is
// not an error: defaults are used. MFFIT_* environment variables override
// whatever the file says.
func Load(env, path string) (*Config, error) {
	t := &Toml{}
	if _, err := toml.DecodeFile(path, t); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Default()
	}
	cfg.fillDefaults()
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.StorageKey == "" {
		c.StorageKey = def.StorageKey
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

func (c *Config) applyEnv() {
	c.DBPath = getEnv("MFFIT_DB_PATH", c.DBPath)
	c.StorageKey = getEnv("MFFIT_STORAGE_KEY", c.StorageKey)
	c.LogFile = getEnv("MFFIT_LOG_FILE", c.LogFile)
	c.LogLevel = getEnv("MFFIT_LOG_LEVEL", c.LogLevel)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
