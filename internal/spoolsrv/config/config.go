// Package config loads and validates the spoolsrv configuration file.
// Configuration is TOML; database credentials may be overridden through the
// environment (a .env file next to the working directory is honored).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/spoolcommon"
)

// Version is the supported config file format version.
const Version = "0.1"

// InventoryConfig holds inventory policy settings.
type InventoryConfig struct {
	// DefaultStatus is the status assigned to new spools when the caller does
	// not supply one. Observed deployments differ between "sealed" and
	// "in_use"; this installation defaults to "sealed".
	DefaultStatus string `toml:"default_status"`
	// DefaultInitialWeight is the initial weight in grams assigned to new
	// spools when the caller does not supply one.
	DefaultInitialWeight int `toml:"default_initial_weight"`
}

// ConfigParam holds all configuration parameters for the inventory service.
type ConfigParam struct {
	FormatVersion string `toml:"format_version"` // version of this configuration file format

	ServerHostName     string `toml:"server_hostname"`       // hostname for the server
	ServerPort         string `toml:"server_port"`           // port for the API server
	HandleCORS         bool   `toml:"handle_cors"`           // whether to handle CORS
	MaxRequestBodySize int64  `toml:"max_request_body_size"` // maximum request body size in bytes
	RequestTimeout     string `toml:"request_timeout"`       // per-request deadline, e.g. "30s"

	Inventory InventoryConfig `toml:"inventory"`

	DB struct {
		Host     string `toml:"host"`
		Port     int    `toml:"port"`
		DBName   string `toml:"dbname"`
		User     string `toml:"user"`
		Password string `toml:"password"`
		SSLMode  string `toml:"sslmode"`
	} `toml:"db"`
}

var cfg *ConfigParam

// Config returns the current configuration.
func Config() *ConfigParam {
	return cfg
}

// DSN returns the database connection string.
func (c *ConfigParam) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.DBName, c.DB.SSLMode)
}

// InventoryDSN returns the DSN for the inventory database.
func InventoryDSN() string {
	return cfg.DSN()
}

// GetRequestTimeout returns the configured per-request deadline, or panics if
// the value is invalid. Validation catches bad values at load time.
func (c *ConfigParam) GetRequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		panic(fmt.Sprintf("invalid request_timeout: %v", err))
	}
	return d
}

// DefaultSpoolStatus returns the configured status for new spools.
func DefaultSpoolStatus() spoolcommon.SpoolStatus {
	return spoolcommon.SpoolStatus(cfg.Inventory.DefaultStatus)
}

// DefaultInitialWeight returns the configured initial weight for new spools.
func DefaultInitialWeight() int {
	return cfg.Inventory.DefaultInitialWeight
}

// ValidateConfig checks that all required configuration values are present
// and valid.
func ValidateConfig(cfg *ConfigParam) error {
	if cfg.FormatVersion != Version {
		return fmt.Errorf("unsupported config file format version: %s", cfg.FormatVersion)
	}
	if err := validateServerConfig(cfg); err != nil {
		return err
	}
	if err := validateInventoryConfig(cfg); err != nil {
		return err
	}
	if err := validateDBConfig(cfg); err != nil {
		return err
	}
	return nil
}

func validateServerConfig(cfg *ConfigParam) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("server_port is required")
	}
	if cfg.MaxRequestBodySize <= 0 {
		cfg.MaxRequestBodySize = 1 << 20
	}
	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = "30s"
	}
	if _, err := time.ParseDuration(cfg.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %v", err)
	}
	return nil
}

func validateInventoryConfig(cfg *ConfigParam) error {
	if cfg.Inventory.DefaultStatus == "" {
		cfg.Inventory.DefaultStatus = string(spoolcommon.StatusSealed)
	}
	if !spoolcommon.SpoolStatus(cfg.Inventory.DefaultStatus).IsValid() {
		return fmt.Errorf("invalid inventory.default_status: %s", cfg.Inventory.DefaultStatus)
	}
	if cfg.Inventory.DefaultInitialWeight == 0 {
		cfg.Inventory.DefaultInitialWeight = 1000
	}
	if cfg.Inventory.DefaultInitialWeight < 0 {
		return fmt.Errorf("inventory.default_initial_weight must be positive")
	}
	return nil
}

func validateDBConfig(cfg *ConfigParam) error {
	if cfg.DB.Host == "" {
		return fmt.Errorf("db.host is required")
	}
	if cfg.DB.Port <= 0 {
		return fmt.Errorf("db.port must be positive")
	}
	if cfg.DB.DBName == "" {
		return fmt.Errorf("db.dbname is required")
	}
	if cfg.DB.User == "" {
		return fmt.Errorf("db.user is required")
	}
	if cfg.DB.Password == "" {
		return fmt.Errorf("db.password is required")
	}
	if cfg.DB.SSLMode == "" {
		return fmt.Errorf("db.sslmode is required")
	}
	return nil
}

// LoadConfig loads configuration from a file. Environment variables
// SPOOLTRACK_DB_PASSWORD and SPOOLTRACK_DB_USER, possibly supplied through a
// .env file in the working directory, override the file values.
func LoadConfig(filename string) error {
	if filename == "" {
		return fmt.Errorf("config filename is required")
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	cfg = &ConfigParam{}
	if _, err := toml.Decode(string(content), cfg); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}

	applyEnvOverrides(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	return nil
}

// applyEnvOverrides applies environment overrides for database credentials.
func applyEnvOverrides(cfg *ConfigParam) {
	_ = godotenv.Load() // no error if .env doesn't exist

	if v := os.Getenv("SPOOLTRACK_DB_USER"); v != "" {
		cfg.DB.User = v
	}
	if v := os.Getenv("SPOOLTRACK_DB_PASSWORD"); v != "" {
		cfg.DB.Password = v
	}
	if v := os.Getenv("SPOOLTRACK_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.DB.Port = port
		}
	}
}

var isTest = false

// IsTest reports whether the process is running under test configuration.
func IsTest() bool {
	return isTest
}

// TestInit loads the default configuration from the repository root for
// tests. It walks up from the working directory until it finds go.mod.
func TestInit() {
	isTest = true
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	projectRoot := wd
	for {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			panic("could not find project root (go.mod)")
		}
		projectRoot = parent
	}
	if err := LoadConfig(filepath.Join(projectRoot, "spoolsrv.conf")); err != nil {
		panic(fmt.Errorf("error loading config: %v", err))
	}
}
