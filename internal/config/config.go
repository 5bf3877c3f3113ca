package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"

	DefaultTokenTTL = 48 * time.Hour
)

var ErrMissingSecret = errors.New("JWT_SECRET is not set")

type DB struct {
	DbHOST         string
	DbPORT         string
	DbUSER         string
	DbPASSWORD     string
	DbNAME         string
	DbSSLMODE      string
	MigrationsPath string
}

// DSN renders the lib/pq connection string.
func (d DB) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST, d.DbPORT, d.DbUSER, d.DbPASSWORD, d.DbNAME, d.DbSSLMODE,
	)
}

type Mongo struct {
	URI      string
	Database string
}

// Config is built once at startup and shared read-only afterwards.
type Config struct {
	ServerPort      int
	StoreDriver     string
	DB              DB
	Mongo           Mongo
	JWTSecretKey    string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	CORSOrigin      string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	sslMode := getEnv("DB_SSLMODE", "disable")
	if getEnvBool("DB_REQUIRE_SSL", false) {
		sslMode = "require"
	}

	return DB{
		DbHOST:         getEnv("DB_HOST", "localhost"),
		DbPORT:         getEnv("DB_PORT", "5432"),
		DbUSER:         getEnv("DB_USER", "postgres"),
		DbPASSWORD:     getEnv("DB_PASSWORD", "password"),
		DbNAME:         getEnv("DB_NAME", "blog"),
		DbSSLMODE:      sslMode,
		MigrationsPath: getEnv("DB_MIGRATIONS", "migrations/001_create_tables.sql"),
	}
}

func LoadMongo() Mongo {
	return Mongo{
		URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGO_DB", "blog"),
	}
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 3000),
		StoreDriver:     getEnv("STORE_DRIVER", DriverPostgres),
		DB:              LoadDB(),
		Mongo:           LoadMongo(),
		JWTSecretKey:    getEnv("JWT_SECRET", ""),
		TokenTTL:        DefaultTokenTTL,
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
	}
}

// Validate reports configuration the server cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return ErrMissingSecret
	}

	switch c.StoreDriver {
	case DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	return nil
}
