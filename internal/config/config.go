package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds console configuration loaded from environment, an optional .env file and flags.
type Config struct {
	RunAddress          string
	GatewayURL          string
	GatewayToken        string
	GatewayTimeout      time.Duration
	OrdersPollInterval  time.Duration
	ShutdownTimeout     time.Duration
	CreatorOrganization string
	LogLevel            slog.Level
}

const (
	defaultRunAddress          = ":8081"
	defaultGatewayTimeout      = 10 * time.Second
	defaultOrdersPollInterval  = 30 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
	defaultCreatorOrganization = "Magnova"
	defaultLogLevel            = "info"
	defaultEnvFile             = ".env"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, processEnv envLookup) (*Config, error) {
	lookup, err := withEnvFile(processEnv)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RunAddress:          getString(lookup, "CONSOLE_ADDRESS", defaultRunAddress),
		GatewayURL:          getString(lookup, "GATEWAY_URL", ""),
		GatewayToken:        getString(lookup, "GATEWAY_TOKEN", ""),
		GatewayTimeout:      getDuration(lookup, "GATEWAY_TIMEOUT", defaultGatewayTimeout),
		OrdersPollInterval:  getDuration(lookup, "ORDERS_POLL_INTERVAL", defaultOrdersPollInterval),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		CreatorOrganization: getString(lookup, "CREATOR_ORGANIZATION", defaultCreatorOrganization),
	}

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		gatewayTimeoutStr  = cfg.GatewayTimeout.String()
		pollIntervalStr    = cfg.OrdersPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "Console API listen address")
	fs.StringVar(&cfg.GatewayURL, "g", cfg.GatewayURL, "API gateway base URL")
	fs.StringVar(&cfg.GatewayToken, "gateway-token", cfg.GatewayToken, "Bearer token sent to the API gateway; takes precedence over GATEWAY_TOKEN_FILE and GATEWAY_TOKEN")
	fs.StringVar(&gatewayTimeoutStr, "gateway-timeout", gatewayTimeoutStr, "Timeout for a single gateway request")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between purchase order list refreshes, 0 disables polling")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.CreatorOrganization, "creator-org", cfg.CreatorOrganization, "Organization allowed to raise purchase orders")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.GatewayTimeout, err = time.ParseDuration(gatewayTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid gateway timeout: %w", err)
	}

	if cfg.OrdersPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	tokenFlagSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "gateway-token" {
			tokenFlagSet = true
		}
	})

	if tokenFile, ok := lookup("GATEWAY_TOKEN_FILE"); ok && tokenFile != "" && !tokenFlagSet {
		content, err := os.ReadFile(tokenFile)
		if err != nil {
			return nil, fmt.Errorf("read gateway token file: %w", err)
		}
		cfg.GatewayToken = strings.TrimSpace(string(content))
	}

	if cfg.GatewayTimeout <= 0 {
		cfg.GatewayTimeout = defaultGatewayTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.OrdersPollInterval < 0 {
		return nil, fmt.Errorf("poll interval must not be negative")
	}

	if cfg.GatewayURL == "" {
		return nil, fmt.Errorf("gateway URL must be provided")
	}

	u, err := url.Parse(cfg.GatewayURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("gateway URL must be an absolute http(s) URL: %q", cfg.GatewayURL)
	}
	cfg.GatewayURL = strings.TrimRight(cfg.GatewayURL, "/")

	return cfg, nil
}

// withEnvFile layers the .env file under the process environment.
// A missing default file is not an error; a missing file named by CONSOLE_ENV_FILE is.
func withEnvFile(processEnv envLookup) (envLookup, error) {
	path, explicit := processEnv("CONSOLE_ENV_FILE")
	if !explicit || path == "" {
		path, explicit = defaultEnvFile, false
	}

	fileEnv, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return processEnv, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := processEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
