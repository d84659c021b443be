package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Cache     CacheConfig     `yaml:"cache"`
	Remote    RemoteConfig    `yaml:"remote"`
	Generator GeneratorConfig `yaml:"generator"`
	MCP       MCPConfig       `yaml:"mcp"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig points at the remote Postgres mirror. An empty host leaves
// the mirror unconfigured and the app runs local-only.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type CacheConfig struct {
	Path string `yaml:"path"`
}

type RemoteConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

type GeneratorConfig struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
}

// MCPConfig selects the profile the assistant tools read.
type MCPConfig struct {
	Identity string `yaml:"identity"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	port := d.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, port, d.Name, sslmode)
}

// Configured reports whether a remote mirror should be used.
func (d DatabaseConfig) Configured() bool {
	return d.Host != ""
}

func defaults() *Config {
	return &Config{
		Server:    ServerConfig{Host: "127.0.0.1", Port: 8080},
		Tailscale: TailscaleConfig{Hostname: "fitflow", StateDir: "tsnet-state"},
		Cache:     CacheConfig{Path: "fitflow.db"},
		Remote:    RemoteConfig{Timeout: 10 * time.Second},
		Generator: GeneratorConfig{Provider: "gemini", Model: "gemini-2.5-flash", Timeout: 120 * time.Second},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads config from a YAML file on top of the defaults, then applies
// environment variable overrides. An empty path uses defaults and env only.
// Env vars use the prefix FITFLOW_ and underscore-separated paths:
//
//	FITFLOW_SERVER_HOST, FITFLOW_SERVER_PORT,
//	FITFLOW_DB_HOST, FITFLOW_DB_PORT, FITFLOW_DB_NAME,
//	FITFLOW_DB_USER, FITFLOW_DB_PASSWORD, FITFLOW_DB_SSLMODE,
//	FITFLOW_AUTH_API_KEY, FITFLOW_CACHE_PATH,
//	FITFLOW_GENERATOR_API_KEY, FITFLOW_GENERATOR_MODEL,
//	FITFLOW_MCP_IDENTITY, FITFLOW_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITFLOW_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("FITFLOW_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FITFLOW_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("FITFLOW_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("FITFLOW_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("FITFLOW_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("FITFLOW_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("FITFLOW_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("FITFLOW_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("FITFLOW_CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("FITFLOW_GENERATOR_API_KEY"); v != "" {
		cfg.Generator.APIKey = v
	}
	if v := os.Getenv("FITFLOW_GENERATOR_MODEL"); v != "" {
		cfg.Generator.Model = v
	}
	if v := os.Getenv("FITFLOW_MCP_IDENTITY"); v != "" {
		cfg.MCP.Identity = v
	}
	if v := os.Getenv("FITFLOW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Database.Configured() {
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required when database.host is set")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database.user is required when database.host is set")
		}
	}
	if c.Cache.Path == "" {
		return fmt.Errorf("cache.path is required")
	}
	if c.Remote.Timeout <= 0 {
		return fmt.Errorf("remote.timeout must be positive")
	}
	switch c.Generator.Provider {
	case "gemini", "none":
	default:
		return fmt.Errorf("generator.provider must be gemini or none, got %q", c.Generator.Provider)
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
