package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
	DriverMemory   = "memory"
)

type Config struct {
	HTTP      HTTP
	Database  Database
	Grid      Grid
	Log       Log
	RateLimit RateLimit
}

// HTTP configures the listener. TrustedProxies holds the IPs or CIDR ranges
// of reverse proxies whose X-Forwarded-For header identifies the client;
// empty means every client is keyed on its TCP address.
type HTTP struct {
	Addr            string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

// Database names the product store. DSN is the connection string handed
// to the driver.
type Database struct {
	Driver       string
	DSN          string
	QueryTimeout time.Duration
	MaxOpenConns int
}

type Grid struct {
	PageSize int
}

type Log struct {
	Level  string
	Format string
}

type RateLimit struct {
	RPS   float64
	Burst int
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("http.trusted_proxies", []string{})

	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.query_timeout", "3s")
	v.SetDefault("database.max_open_conns", 10)

	v.SetDefault("grid.page_size", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("rate_limit.rps", 5.0)
	v.SetDefault("rate_limit.burst", 10)
}

// NewViper returns a viper instance with defaults and CATALOG_ environment
// overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("catalog")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/catalog")
	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads the given config file, or searches the default paths when
// path is empty. A missing file in the default paths is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTP: HTTP{
			Addr:            v.GetString("http.addr"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
			TrustedProxies:  v.GetStringSlice("http.trusted_proxies"),
		},
		Database: Database{
			Driver:       strings.ToLower(v.GetString("database.driver")),
			DSN:          v.GetString("database.dsn"),
			QueryTimeout: v.GetDuration("database.query_timeout"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
		},
		Grid: Grid{
			PageSize: v.GetInt("grid.page_size"),
		},
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		RateLimit: RateLimit{
			RPS:   v.GetFloat64("rate_limit.rps"),
			Burst: v.GetInt("rate_limit.burst"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", c.Database.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}
	if c.Database.QueryTimeout <= 0 {
		return errors.New("database.query_timeout must be greater than zero")
	}
	if c.Grid.PageSize <= 0 {
		return errors.New("grid.page_size must be greater than zero")
	}
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	for _, p := range c.HTTP.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("invalid http.trusted_proxies entry %q", p)
			}
		}
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log.format %q", c.Log.Format)
	}
	return nil
}
