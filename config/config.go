package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Env             string
	LogMode         string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	DB              DBConfig
}

type DBConfig struct {
	Driver       string // sqlite|mysql|postgres
	Path         string // sqlite file
	DSN          string // mysql/postgres
	AutoMigrate  bool
	MaxOpenConns int
	QueryTimeout time.Duration
}

// Load reads .env (when present) and the process environment. The returned
// error names the first malformed variable.
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	var firstErr error
	dur := func(k, def string) time.Duration {
		d, err := time.ParseDuration(get(k, def))
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", k, err)
		}
		return d
	}
	num := func(k, def string) int {
		n, err := strconv.Atoi(get(k, def))
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", k, err)
		}
		return n
	}

	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Env:             get("APP_ENV", "dev"),
		LogMode:         get("LOG_MODE", "dev"),
		CORSOrigins:     splitList(get("CORS_ORIGINS", "*")),
		ShutdownTimeout: dur("SHUTDOWN_TIMEOUT", "10s"),
		DB: DBConfig{
			Driver:       strings.ToLower(get("DB_DRIVER", "sqlite")),
			Path:         get("DB_PATH", "cropsync.db"),
			DSN:          get("DB_DSN", ""),
			AutoMigrate:  get("DB_AUTO_MIGRATE", "true") == "true",
			MaxOpenConns: num("DB_MAX_OPEN_CONNS", "10"),
			QueryTimeout: dur("DB_QUERY_TIMEOUT", "5s"),
		},
	}
	if firstErr != nil {
		return AppConfig{}, firstErr
	}
	switch cfg.DB.Driver {
	case "sqlite":
	case "mysql", "postgres":
		if cfg.DB.DSN == "" {
			return AppConfig{}, fmt.Errorf("DB_DSN is required for DB_DRIVER=%s", cfg.DB.Driver)
		}
	default:
		return AppConfig{}, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DB.Driver)
	}
	return cfg, nil
}

// Redacted is the loggable form of the config.
func (c AppConfig) Redacted() map[string]any {
	dsn := ""
	if c.DB.DSN != "" {
		dsn = "[set]"
	}
	return map[string]any{
		"port":             c.Port,
		"env":              c.Env,
		"log_mode":         c.LogMode,
		"cors_origins":     c.CORSOrigins,
		"shutdown_timeout": c.ShutdownTimeout.String(),
		"db_driver":        c.DB.Driver,
		"db_path":          c.DB.Path,
		"db_conn":          dsn,
		"db_auto_migrate":  c.DB.AutoMigrate,
		"db_max_open":      c.DB.MaxOpenConns,
		"db_query_timeout": c.DB.QueryTimeout.String(),
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
