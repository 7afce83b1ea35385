package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	domainErrors "github.com/thomas-vilte/frontend-edit-agent/internal/errors"
)

type Config struct {
	Host                  string   `json:"host"`
	Port                  int      `json:"port"`
	Debug                 bool     `json:"debug"`
	Language              string   `json:"language"`
	StaticDir             string   `json:"static_dir"`
	GitHubToken           string   `json:"github_token,omitempty"`
	RequestTimeoutSeconds int      `json:"request_timeout_seconds"`
	CORSAllowedOrigins    []string `json:"cors_allowed_origins"`
	PRNumber              int      `json:"pr_number"`

	PathFile string `json:"-"`
}

const (
	defaultHost           = "0.0.0.0"
	defaultPort           = 3000
	defaultLang           = LangEN
	defaultStaticDir      = "."
	defaultTimeoutSeconds = 30
	defaultPRNumber       = 123

	configDirName  = ".frontend-edit-agent"
	configFileName = "config.json"
)

// Default returns a configuration with every field at its default value.
func Default() *Config {
	return &Config{
		Host:                  defaultHost,
		Port:                  defaultPort,
		Language:              defaultLang,
		StaticDir:             defaultStaticDir,
		RequestTimeoutSeconds: defaultTimeoutSeconds,
		CORSAllowedOrigins:    []string{"*"},
		PRNumber:              defaultPRNumber,
	}
}

// LoadConfig reads the configuration file, creating it with defaults when it
// does not exist, then applies environment overrides. path is either a .json
// file or a directory under which .frontend-edit-agent/config.json is used.
func LoadConfig(path string) (*Config, error) {
	configPath := path
	if filepath.Ext(path) != ".json" {
		configPath = filepath.Join(path, configDirName, configFileName)
	}

	var cfg *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg, err = createDefaultConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", configPath)
		}

		cfg = Default()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, domainErrors.ErrConfigRead.WithError(fmt.Errorf("error decoding JSON: %w", err)).
				WithContext("path", configPath)
		}
		cfg.PathFile = configPath
	}

	applyEnv(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, domainErrors.ErrConfigInvalid.WithError(err)
	}

	return cfg, nil
}

func createDefaultConfig(path string) (*Config, error) {
	cfg := Default()
	cfg.PathFile = path

	if err := SaveConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	if err := validateConfig(cfg); err != nil {
		return domainErrors.ErrConfigInvalid.WithError(err)
	}

	if cfg.PathFile == "" {
		return domainErrors.ErrConfigWrite.WithError(errors.New("config file path is not set"))
	}

	if err := os.MkdirAll(filepath.Dir(cfg.PathFile), 0755); err != nil {
		return domainErrors.ErrConfigWrite.WithError(err).WithContext("path", cfg.PathFile)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return domainErrors.ErrConfigWrite.WithError(err)
	}

	if err := os.WriteFile(cfg.PathFile, data, 0600); err != nil {
		return domainErrors.ErrConfigWrite.WithError(err).WithContext("path", cfg.PathFile)
	}

	return nil
}

// applyEnv overrides file values with the process environment. Values that
// fail to parse are ignored.
func applyEnv(cfg *Config) {
	cfg.Host = getEnvOrDefault("HOST", cfg.Host)
	cfg.Language = getEnvOrDefault("LANGUAGE", cfg.Language)
	cfg.StaticDir = getEnvOrDefault("STATIC_DIR", cfg.StaticDir)
	cfg.GitHubToken = getEnvOrDefault("GITHUB_TOKEN", cfg.GitHubToken)

	if port, ok := getEnvInt("PORT"); ok {
		cfg.Port = port
	}
	if timeout, ok := getEnvInt("REQUEST_TIMEOUT_SECONDS"); ok {
		cfg.RequestTimeoutSeconds = timeout
	}
	if debug := os.Getenv("DEBUG"); debug != "" {
		cfg.Debug = strings.EqualFold(debug, "true")
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	if !IsSupportedLanguage(cfg.Language) {
		return fmt.Errorf("language %q is not supported", cfg.Language)
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		return errors.New("request_timeout_seconds must be greater than 0")
	}
	if cfg.PRNumber <= 0 {
		return errors.New("pr_number must be greater than 0")
	}
	return nil
}

// Masked returns a copy safe to print, with the token hidden.
func (c *Config) Masked() Config {
	out := *c
	if out.GitHubToken != "" {
		out.GitHubToken = maskToken(out.GitHubToken)
	}
	return out
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
