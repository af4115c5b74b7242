// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// DefaultSeedURL is the document the seed loader fetches by default.
const DefaultSeedURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

var validLogFormats = []string{"", "human", "json"}

type Config struct {
	Port    string
	GinMode string
	// LogFormat is "human" or "json". When empty, it is chosen by the gin mode.
	LogFormat string

	// API URL used for the API documentation
	APIURL *url.URL

	// SQLite database file, used when MongoURI is empty
	DBPath string

	MongoURI      string
	MongoDatabase string

	SeedURL     string
	SeedTimeout time.Duration

	// Whitespace separated list of origins. All origins are allowed when empty.
	CORSAllowOrigins []string
	EnablePprof      bool
}

// Load reads the configuration from the environment.
//
// A .env file in the working directory is loaded first if it exists.
// Variables that are already set take precedence over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("API_URL", "http://localhost:5000")
	v.SetDefault("DB_PATH", "data/transactions.db")
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "transactions")
	v.SetDefault("SEED_URL", DefaultSeedURL)
	v.SetDefault("SEED_TIMEOUT", "30s")
	v.SetDefault("CORS_ALLOW_ORIGINS", "")
	v.SetDefault("ENABLE_PPROF", false)

	apiURL, err := url.Parse(v.GetString("API_URL"))
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	cfg := &Config{
		Port:             v.GetString("PORT"),
		GinMode:          v.GetString("GIN_MODE"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		APIURL:           apiURL,
		DBPath:           v.GetString("DB_PATH"),
		MongoURI:         v.GetString("MONGODB_URI"),
		MongoDatabase:    v.GetString("MONGODB_DATABASE"),
		SeedURL:          v.GetString("SEED_URL"),
		SeedTimeout:      v.GetDuration("SEED_TIMEOUT"),
		CORSAllowOrigins: strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:      v.GetBool("ENABLE_PPROF"),
	}

	return cfg, cfg.Validate()
}

// Validate reports all invalid settings at once.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", port))
	}

	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid log format '%s': must be one of human, json", c.LogFormat))
	}

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, errors.New("API_URL must be an absolute URL"))
	}

	if c.MongoURI == "" && c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty when MONGODB_URI is not set"))
	}

	if c.MongoURI != "" && c.MongoDatabase == "" {
		errs = append(errs, errors.New("MONGODB_DATABASE cannot be empty when MONGODB_URI is set"))
	}

	if c.SeedTimeout <= 0 {
		errs = append(errs, errors.New("SEED_TIMEOUT must be a positive duration"))
	}

	return errors.Join(errs...)
}

// Addr is the address the HTTP server listens on.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// HumanLogs reports whether logs are written for humans instead of as JSON.
//
// If LOG_FORMAT is not set, it defaults to human readable for development
// and JSON for release.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}
