package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir   string
	Seed        uint64
	SeedSet     bool
	Count       int
	BaseTime    time.Time // zero keeps each profile's own anchor
	Location    *time.Location
	CatalogFile string

	FleetConsistentTimes bool

	LogLevel  string
	LogFormat string

	DatabaseURL  string
	DBAutoCreate bool

	NATSURL           string
	NATSSubjectPrefix string
	LogNATSSubjects   bool

	MetricsTextfile string
	PushgatewayURL  string
	MetricsJob      string
}

func Load() (*Config, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.OutputDir = getenvDefault("OUTPUT_DIR", ".")
	cfg.CatalogFile = os.Getenv("CATALOG_FILE")

	// Seed; empty means a fresh one per run
	if v := os.Getenv("SEED"); v != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED: %q", v)
		}
		cfg.Seed = seed
		cfg.SeedSet = true
	}

	if v := os.Getenv("SHIPMENT_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid SHIPMENT_COUNT: %q", v)
		}
		cfg.Count = n
	}

	// Time zone
	tzName := getenvDefault("TZ", "")
	if tzName == "" {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(tzName)
		if err != nil {
			return nil, fmt.Errorf("invalid TZ: %v", err)
		}
		cfg.Location = loc
	}

	if v := os.Getenv("BASE_TIME"); v != "" {
		t, err := ParseBaseTime(v, cfg.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid BASE_TIME: %q", v)
		}
		cfg.BaseTime = t
	}

	cfg.FleetConsistentTimes = parseBool(os.Getenv("FLEET_CONSISTENT_TIMES"))

	cfg.LogLevel = strings.ToLower(getenvDefault("LOG_LEVEL", "info"))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q", cfg.LogLevel)
	}
	cfg.LogFormat = strings.ToLower(getenvDefault("LOG_FORMAT", "console"))
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT: %q", cfg.LogFormat)
	}

	// Database sink: DATABASE_URL / PG_DSN, else PG* vars when PGDATABASE is set.
	// Leaving all of them empty disables the sink.
	cfg.DatabaseURL = firstNonEmpty(os.Getenv("DATABASE_URL"), os.Getenv("PG_DSN"))
	if cfg.DatabaseURL == "" {
		if db := os.Getenv("PGDATABASE"); db != "" {
			host := getenvDefault("PGHOST", "127.0.0.1")
			port := getenvDefault("PGPORT", "5432")
			user := getenvDefault("PGUSER", "postgres")
			pass := os.Getenv("PGPASSWORD")
			sslmode := getenvDefault("PGSSLMODE", "disable")
			if pass != "" {
				cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", urlEscape(user), urlEscape(pass), host, port, db, sslmode)
			} else {
				cfg.DatabaseURL = fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=%s", urlEscape(user), host, port, db, sslmode)
			}
		}
	}
	cfg.DBAutoCreate = parseBool(os.Getenv("DB_AUTO_CREATE"))

	// NATS sink; empty URL disables it
	cfg.NATSURL = os.Getenv("NATS_URL")
	cfg.NATSSubjectPrefix = getenvDefault("NATS_SUBJECT_PREFIX", "shipments")
	cfg.LogNATSSubjects = parseBool(os.Getenv("LOG_NATS_SUBJECTS"))

	cfg.MetricsTextfile = os.Getenv("METRICS_TEXTFILE")
	cfg.PushgatewayURL = os.Getenv("PUSHGATEWAY_URL")
	cfg.MetricsJob = getenvDefault("METRICS_JOB", "shipgen")

	return cfg, nil
}

// ParseBaseTime accepts RFC3339 or the zone-less fixture layout.
func ParseBaseTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", v, loc)
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}

func urlEscape(s string) string {
	// Minimal escape for DSN user/pass with special chars
	r := strings.NewReplacer("@", "%40", ":", "%3A", "/", "%2F", "?", "%3F", "#", "%23")
	return r.Replace(s)
}
