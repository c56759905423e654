package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the revu configuration.
type Config struct {
	APIKey       string   `json:"apiKey,omitempty"`
	Endpoint     string   `json:"endpoint"`
	TicketSystem string   `json:"ticketSystem,omitempty"`
	ContextLines int      `json:"contextLines"`
	MaxLines     int      `json:"maxLines"`
	Workers      int      `json:"workers"`
	Ignore       []string `json:"ignore,omitempty"`
	Redact       bool     `json:"redact"`
	Cache        Cache    `json:"cache"`
}

// Cache controls response caching.
type Cache struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Endpoint:     "https://api.revu.dev/v1/reviews",
		ContextLines: 15,
		MaxLines:     2000,
		Workers:      4,
		Redact:       true,
		Cache: Cache{
			Enabled:    true,
			TTLSeconds: 86400,
		},
	}
}

// Dir returns the platform-appropriate config directory for revu.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "revu"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "revu"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "revu"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "revu"), nil
	default:
		return filepath.Join(home, ".config", "revu"), nil
	}
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file. The file holds the API key, so
// it is not group or world readable.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. A .env file in the working directory is folded into the
// environment first; the overrides map comes from CLI flags.
func Load(overrides map[string]string) (Config, error) {
	_ = godotenv.Load() // absent .env is the normal case

	cfg := Default()
	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.TicketSystem != "" {
		dst.TicketSystem = src.TicketSystem
	}
	if src.ContextLines > 0 {
		dst.ContextLines = src.ContextLines
	}
	if src.MaxLines > 0 {
		dst.MaxLines = src.MaxLines
	}
	if src.Workers > 0 {
		dst.Workers = src.Workers
	}
	if len(src.Ignore) > 0 {
		dst.Ignore = src.Ignore
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	dst.Cache.Enabled = src.Cache.Enabled || dst.Cache.Enabled
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("REVU_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("REVU_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("REVU_TICKET_SYSTEM"); v != "" {
		cfg.TicketSystem = v
	}
	if v := os.Getenv("REVU_CONTEXT_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ContextLines = n
		}
	}
	if v := os.Getenv("REVU_MAX_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxLines = n
		}
	}
	if v := os.Getenv("REVU_IGNORE"); v != "" {
		cfg.Ignore = splitList(v)
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["endpoint"]; ok && v != "" {
		cfg.Endpoint = v
	}
	if v, ok := overrides["ticketSystem"]; ok && v != "" {
		cfg.TicketSystem = v
	}
	if v, ok := overrides["contextLines"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ContextLines = n
		}
	}
	if v, ok := overrides["maxLines"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxLines = n
		}
	}
	if v, ok := overrides["workers"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v, ok := overrides["ignore"]; ok && v != "" {
		cfg.Ignore = splitList(v)
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "apiKey":
		cfg.APIKey = value
	case "endpoint":
		cfg.Endpoint = value
	case "ticketSystem":
		cfg.TicketSystem = value
	case "contextLines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("contextLines must be an integer: %w", err)
		}
		cfg.ContextLines = n
	case "maxLines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxLines must be an integer: %w", err)
		}
		cfg.MaxLines = n
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("workers must be an integer: %w", err)
		}
		cfg.Workers = n
	case "ignore":
		cfg.Ignore = splitList(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
