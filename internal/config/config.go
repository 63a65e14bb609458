// Package config loads engine configuration from a YAML file with
// environment variable overrides. Every field has a working default so a
// local run needs no config file at all.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes YAML duration strings such as "24h" or "1h30m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds all application configuration.
type Config struct {
	Server struct {
		GRPCPort string `yaml:"grpc_port"`
		APIToken string `yaml:"api_token"`
	} `yaml:"server"`
	Database struct {
		ConnStr  string `yaml:"conn_str"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	Recorder struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"recorder"`
	Schedule struct {
		HarvestCron string `yaml:"harvest_cron"`
	} `yaml:"schedule"`
	Vault struct {
		Name           string        `yaml:"name"`
		Asset          string        `yaml:"asset"`
		CashBufferBps  int64         `yaml:"cash_buffer_bps"`
		SlippageBps    int64         `yaml:"slippage_bps"`
		MaxLossBps     int64         `yaml:"max_loss_bps"`
		ProtocolFeeBps int64         `yaml:"protocol_fee_bps"`
		GracePeriod    Duration      `yaml:"grace_period"`
		MinHoldPeriod  Duration      `yaml:"min_hold_period"`
	} `yaml:"vault"`
	Strategy struct {
		RateBps  int64         `yaml:"rate_bps"`
		Interval Duration      `yaml:"interval"`
	} `yaml:"strategy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and fills in defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GRPC_PORT"); v != "" {
		cfg.Server.GRPCPort = v
	}
	if v := os.Getenv("API_TOKEN"); v != "" {
		cfg.Server.APIToken = v
	}
	if v := os.Getenv("DB_CONN_STR"); v != "" {
		cfg.Database.ConnStr = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		cfg.Database.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Recorder.SQLitePath = v
	}
	if v := os.Getenv("HARVEST_CRON"); v != "" {
		cfg.Schedule.HarvestCron = v
	}
	if v := os.Getenv("PROTOCOL_FEE_BPS"); v != "" {
		if bps, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Vault.ProtocolFeeBps = bps
		}
	}

	// Defaults
	if cfg.Server.GRPCPort == "" {
		cfg.Server.GRPCPort = ":8080"
	}
	if cfg.Server.APIToken == "" {
		cfg.Server.APIToken = "dev-token"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.Password == "" {
		cfg.Database.Password = "postgres"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "donorvault"
	}
	if cfg.Recorder.SQLitePath == "" {
		cfg.Recorder.SQLitePath = "data/events.db"
	}
	if cfg.Schedule.HarvestCron == "" {
		// Hourly harvest keeper. Time gates in the ledger itself are lazy
		// comparisons, so a stalled keeper only delays yield recognition.
		cfg.Schedule.HarvestCron = "0 * * * *"
	}
	if cfg.Vault.Name == "" {
		cfg.Vault.Name = "main"
	}
	if cfg.Vault.Asset == "" {
		cfg.Vault.Asset = "USDC"
	}
	if cfg.Vault.CashBufferBps == 0 {
		cfg.Vault.CashBufferBps = 100
	}
	if cfg.Vault.SlippageBps == 0 {
		cfg.Vault.SlippageBps = 50
	}
	if cfg.Vault.MaxLossBps == 0 {
		cfg.Vault.MaxLossBps = 50
	}
	if cfg.Vault.ProtocolFeeBps == 0 {
		cfg.Vault.ProtocolFeeBps = 200
	}
	if cfg.Vault.GracePeriod == 0 {
		cfg.Vault.GracePeriod = Duration(24 * time.Hour)
	}
	if cfg.Vault.MinHoldPeriod == 0 {
		cfg.Vault.MinHoldPeriod = Duration(7 * 24 * time.Hour)
	}
	if cfg.Strategy.RateBps == 0 {
		cfg.Strategy.RateBps = 10
	}
	if cfg.Strategy.Interval == 0 {
		cfg.Strategy.Interval = Duration(24 * time.Hour)
	}

	return cfg, nil
}

// ConnectionString returns the explicit conn_str when set, otherwise one
// assembled from the individual fields.
func (c *Config) ConnectionString() string {
	if c.Database.ConnStr != "" {
		return c.Database.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name)
}

// Validate checks that bps fields are inside the basis-point range.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name string
		bps  int64
	}{
		{"vault.cash_buffer_bps", c.Vault.CashBufferBps},
		{"vault.slippage_bps", c.Vault.SlippageBps},
		{"vault.max_loss_bps", c.Vault.MaxLossBps},
		{"vault.protocol_fee_bps", c.Vault.ProtocolFeeBps},
	} {
		if f.bps < 0 || f.bps > 10000 {
			return fmt.Errorf("%s must be between 0 and 10000", f.name)
		}
	}
	if c.Strategy.RateBps < 0 {
		return fmt.Errorf("strategy.rate_bps cannot be negative")
	}
	return nil
}
