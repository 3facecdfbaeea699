package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string
	JWTSecret   string

	// Gateway selection. Environment is "integration" or "production"; the
	// commerce code and API key are only consulted for production — the
	// integration credentials are well-known and compiled into the adapter.
	GatewayEnvironment      string
	GatewayCommerceCode     string
	GatewayAPIKey           string
	GatewayForceIntegration bool
	GatewayBaseURL          string

	PendingTTL      time.Duration
	SweepInterval   time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultGatewayEnv      = "integration"
	defaultPendingTTL      = 30 * time.Minute
	defaultSweepInterval   = 5 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:              getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:             getString(lookup, "DATABASE_URI", ""),
		JWTSecret:               getString(lookup, "JWT_SECRET", defaultJWTSecret),
		GatewayEnvironment:      getString(lookup, "GATEWAY_ENVIRONMENT", defaultGatewayEnv),
		GatewayCommerceCode:     getString(lookup, "GATEWAY_COMMERCE_CODE", ""),
		GatewayAPIKey:           getString(lookup, "GATEWAY_API_KEY", ""),
		GatewayForceIntegration: getBool(lookup, "GATEWAY_FORCE_INTEGRATION", false),
		GatewayBaseURL:          getString(lookup, "GATEWAY_BASE_URL", ""),
		PendingTTL:              getDuration(lookup, "PENDING_TTL", defaultPendingTTL),
		SweepInterval:           getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		ShutdownTimeout:         getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("spinzone", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pendingTTLStr      = cfg.PendingTTL.String()
		sweepIntervalStr   = cfg.SweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.GatewayEnvironment, "gateway-env", cfg.GatewayEnvironment, "Payment gateway environment (integration|production)")
	fs.StringVar(&cfg.GatewayCommerceCode, "gateway-commerce-code", cfg.GatewayCommerceCode, "Production commerce code for the payment gateway")
	fs.StringVar(&cfg.GatewayAPIKey, "gateway-api-key", cfg.GatewayAPIKey, "Production API key for the payment gateway")
	fs.BoolVar(&cfg.GatewayForceIntegration, "gateway-force-integration", cfg.GatewayForceIntegration, "Use integration credentials even in production")
	fs.StringVar(&cfg.GatewayBaseURL, "gateway-base-url", cfg.GatewayBaseURL, "Override payment gateway base URL")
	fs.StringVar(&pendingTTLStr, "pending-ttl", pendingTTLStr, "Time before an abandoned pending transaction expires")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between pending transaction sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PendingTTL, err = time.ParseDuration(pendingTTLStr); err != nil {
		return nil, fmt.Errorf("invalid pending ttl: %w", err)
	}

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.PendingTTL <= 0 {
		cfg.PendingTTL = defaultPendingTTL
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.GatewayEnvironment != "integration" && cfg.GatewayEnvironment != "production" {
		return nil, fmt.Errorf("unknown gateway environment %q", cfg.GatewayEnvironment)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
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
