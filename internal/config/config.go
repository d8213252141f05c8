package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env        string
	ServerPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBUrl      string
	DBSync     bool

	JWTSecret    string
	JWTExpiresIn string
	JWTTTL       time.Duration

	Timezone string

	ReservationMinDuration time.Duration
	ReservationMaxDuration time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MenuCacheTTL  time.Duration

	AuthRatePerMinute int

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	env := getEnv("APP_ENV", EnvDevelopment)
	if env != EnvDevelopment && env != EnvProduction {
		return nil, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, env)
	}

	prefix := "LOCAL_"
	if env == EnvProduction {
		prefix = "PROD_"
	}

	cfg := &Config{
		Env:        env,
		ServerPort: getEnv("SERVER_PORT", "3000"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBHost:     getScopedEnv(prefix, "DB_HOST", "localhost"),
		DBPort:     getScopedEnv(prefix, "DB_PORT", "3306"),
		DBUser:     getScopedEnv(prefix, "DB_USERNAME", "root"),
		DBPassword: getScopedEnv(prefix, "DB_PASSWORD", ""),
		DBName:     getScopedEnv(prefix, "DB_DATABASE", "reservation"),
		DBUrl:      getEnv("DATABASE_URL", ""),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: getEnv("JWT_EXPIRES_IN", "24h"),

		Timezone: getEnv("APP_TIMEZONE", "UTC"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	var err error

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	switch cfg.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.DBSync, err = getBool("DB_SYNC", true); err != nil {
		return nil, err
	}
	if cfg.JWTTTL, err = ParseExpiry(cfg.JWTExpiresIn); err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.MenuCacheTTL, err = getDuration("MENU_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.AuthRatePerMinute, err = getInt("AUTH_RATE_PER_MINUTE", 20); err != nil {
		return nil, err
	}

	minMinutes, err := getInt("RESERVATION_MIN_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	maxMinutes, err := getInt("RESERVATION_MAX_MINUTES", 240)
	if err != nil {
		return nil, err
	}
	if minMinutes <= 0 || maxMinutes < minMinutes {
		return nil, fmt.Errorf("invalid reservation duration bounds %d..%d minutes", minMinutes, maxMinutes)
	}
	cfg.ReservationMinDuration = time.Duration(minMinutes) * time.Minute
	cfg.ReservationMaxDuration = time.Duration(maxMinutes) * time.Minute

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// ParseExpiry accepts Go durations ("90m", "2h") and whole days ("7d").
func ParseExpiry(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if days, ok := strings.CutSuffix(v, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day count %q", v)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("expiry must be positive, got %q", v)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getScopedEnv prefers the environment-specific variable (LOCAL_DB_HOST)
// and falls back to the plain one (DB_HOST).
func getScopedEnv(prefix, key, def string) string {
	if v := os.Getenv(prefix + key); v != "" {
		return v
	}
	return getEnv(key, def)
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}
