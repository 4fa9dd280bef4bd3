package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver    string // postgres|sqlite
	DatabaseURL string // postgres DSN (DATABASE_URL)
	DBDSN       string // sqlite override

	JWTSecret string
	TokenTTL  time.Duration

	RequireAuth bool
}

// MissingEnvError names every required variable absent from the
// environment so the caller can report all of them at once.
type MissingEnvError struct {
	Vars []string
}

func (e *MissingEnvError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Vars, ", ")
}

func FromEnv() Config {
	mode := Mode(os.Getenv("APP_ENV"))
	if mode != ModeProduction {
		mode = ModeDevelopment
	}
	dbURL := os.Getenv("DATABASE_URL")
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		// The sqlite fallback is a development convenience only.
		// Production without DATABASE_URL must fail validation, not
		// silently serve a local file.
		if dbURL != "" || mode == ModeProduction {
			driver = "postgres"
		} else {
			driver = "sqlite"
		}
	}
	return Config{
		Mode:        mode,
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		DBDriver:    driver,
		DatabaseURL: dbURL,
		DBDSN:       os.Getenv("DB_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    envDuration("TOKEN_EXPIRES_IN", 24*time.Hour),
		RequireAuth: envBool("REQUIRE_AUTH", false),
	}
}

// Validate reports every required setting that is missing. The server
// treats this as fatal at startup; the router also guards the degraded
// path where data routes answer 500 naming the variable.
func (c Config) Validate() error {
	var missing []string
	if c.DBDriver == "postgres" && c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return &MissingEnvError{Vars: missing}
	}
	return nil
}

// DSN resolves the connection string for the configured driver. In
// production a Postgres URL without an explicit sslmode gets
// sslmode=require appended; certificate verification stays at the
// driver default since managed Postgres often presents certs the local
// bundle does not know.
func (c Config) DSN() string {
	switch c.DBDriver {
	case "postgres":
		dsn := c.DatabaseURL
		if c.Mode == ModeProduction && dsn != "" && !strings.Contains(dsn, "sslmode=") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "sslmode=require"
		}
		return dsn
	default:
		return c.DBDSN
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		fmt.Fprintf(os.Stderr, "config: invalid %s=%q, using default %s\n", k, v, def)
		return def
	}
	return d
}
