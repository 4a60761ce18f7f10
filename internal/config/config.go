package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	View     ViewConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
	SeedsPath       string
	// AutoMigrate runs the SQL migrations on startup; otherwise the schema comes from the models
	AutoMigrate   bool
	SeedDatabase  bool
	ReadyAttempts int
	ReadyInterval time.Duration
}

type SessionConfig struct {
	CookieName   string
	Secret       []byte
	Issuer       string
	TTL          time.Duration
	SecureCookie bool
	// ristretto sizing; cost is counted per entry
	CacheCounters int64
	CacheMaxCost  int64
}

type ViewConfig struct {
	DefaultPageSize int
	RenderBatchSize int
	// DefaultRangeDays bounds the transactions loaded into a session view
	DefaultRangeDays int
	Location         *time.Location
}

type SecurityConfig struct {
	RateLimitPerSecond int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finance_user"),
			Password:        getEnv("DB_PASSWORD", "finance_password"),
			Name:            getEnv("DB_NAME", "finance_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("DB_SEEDS_PATH", "db/seeds"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			ReadyAttempts:   getIntEnv("DB_READY_ATTEMPTS", 30),
			ReadyInterval:   getDurationEnv("DB_READY_INTERVAL", 2*time.Second),
		},
		Session: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE_NAME", "finance_session"),
			Issuer:        getEnv("SESSION_ISSUER", "finance-view"),
			TTL:           getDurationEnv("SESSION_TTL", 12*time.Hour),
			SecureCookie:  getBoolEnv("SESSION_SECURE_COOKIE", false),
			CacheCounters: int64(getIntEnv("SESSION_CACHE_COUNTERS", 10000)),
			CacheMaxCost:  int64(getIntEnv("SESSION_CACHE_MAX_COST", 1000)),
		},
		View: ViewConfig{
			DefaultPageSize:  getIntEnv("VIEW_DEFAULT_PAGE_SIZE", 50),
			RenderBatchSize:  getIntEnv("VIEW_RENDER_BATCH_SIZE", 100),
			DefaultRangeDays: getIntEnv("VIEW_DEFAULT_RANGE_DAYS", 730),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()
	config.View.Location = loadLocation(getEnv("VIEW_TIMEZONE", "Local"))

	secret, err := config.loadSessionSecret()
	if err != nil {
		log.Fatal("Failed to load session secret:", err)
	}
	config.Session.Secret = secret

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("WARNING: unknown VIEW_TIMEZONE %q, using local time", name)
		return time.Local
	}
	return loc
}

// loadSessionSecret reads the HMAC key used to sign session cookies.
// Production requires SESSION_SECRET; elsewhere a random key is generated,
// which invalidates sessions on restart.
func (c *Config) loadSessionSecret() ([]byte, error) {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		if len(secret) < 32 {
			return nil, fmt.Errorf("SESSION_SECRET must be at least 32 characters")
		}
		return []byte(secret), nil
	}

	if c.IsProduction() {
		return nil, fmt.Errorf("SESSION_SECRET environment variable must be set in production environments")
	}

	log.Println("Development environment: generating a random session secret (set SESSION_SECRET to keep sessions across restarts)")
	return GenerateSecret()
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}

// GenerateSecret returns a random 32-byte hex encoded signing key
func GenerateSecret() ([]byte, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	return []byte(hex.EncodeToString(buf)), nil
}
