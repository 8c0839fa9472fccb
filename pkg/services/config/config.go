package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "factory-atlas"
	envPrefix  = "FACTORY_ATLAS"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Store   StoreConfig   `mapstructure:"store"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type StoreConfig struct {
	// Driver is one of duckdb, snowflake or databricks
	Driver       string `mapstructure:"driver"`
	DuckDBPath   string `mapstructure:"duckdb_path"`
	ProfilesPath string `mapstructure:"profiles_path"`
	Profile      string `mapstructure:"profile"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("store.driver", "duckdb")
	v.SetDefault("store.duckdb_path", "factory-atlas.db")
	v.SetDefault("store.profiles_path", "")
	v.SetDefault("store.profile", "")
}

// Load reads the configuration file at path, or factory-atlas.yaml from the
// working directory when path is empty. A missing default file is not an
// error. FACTORY_ATLAS_* environment variables override file values, e.g.
// FACTORY_ATLAS_STORE_DRIVER.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "duckdb":
		if c.Store.DuckDBPath == "" {
			return fmt.Errorf("store.duckdb_path is required for the duckdb driver")
		}
	case "snowflake", "databricks":
		if c.Store.ProfilesPath == "" || c.Store.Profile == "" {
			return fmt.Errorf("store.profiles_path and store.profile are required for the %s driver", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	return nil
}
