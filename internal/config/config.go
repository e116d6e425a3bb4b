package config

import (
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to number conversion
	"strings" // For normalising backend names
	"time"    // For timeouts

	"github.com/joho/godotenv"   // For loading .env files
	"github.com/sirupsen/logrus" // For log level parsing
)

// Supported store backends
const (
	BackendMySQL  = "mysql"  // gorm + MySQL
	BackendMemory = "memory" // In-process store, nothing persisted
)

// DefaultSeedURL is the public product transaction dataset
const DefaultSeedURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

// Config holds the application configuration
type Config struct {
	AppPort      string        // Application port
	DBUser       string        // Database user
	DBPassword   string        // Database password
	DBHost       string        // Database host
	DBPort       string        // Database port
	DBName       string        // Database name
	StoreBackend string        // mysql or memory
	SeedURL      string        // Seed dataset location
	SeedOnStart  bool          // Seed the store before serving
	SeedTimeout  time.Duration // Upper bound for fetching and inserting seed data
	IsProd       bool          // Is production environment
	LogLevel     logrus.Level  // Minimum log level
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:      getEnv("APP_PORT", "5000"),
		DBUser:       getEnv("DB_USER", "root"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       getEnv("DB_HOST", "127.0.0.1"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBName:       getEnv("DB_NAME", "mern_challenge"),
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendMySQL)),
		SeedURL:      getEnv("SEED_URL", DefaultSeedURL),
		SeedOnStart:  getEnvBool("SEED_ON_START", true),
		SeedTimeout:  getEnvDuration("SEED_TIMEOUT", 30*time.Second),
		IsProd:       os.Getenv("IS_PROD") == "true",
		LogLevel:     getEnvLevel("LOG_LEVEL", logrus.InfoLevel),
	}
}

// DSN builds the MySQL data source name. Times are read and written in UTC so
// MONTH() agrees with the in-memory store.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=true&loc=UTC"
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	var problems []string
	if port, err := strconv.Atoi(c.AppPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %q", c.AppPort))
	}
	if c.StoreBackend != BackendMySQL && c.StoreBackend != BackendMemory {
		problems = append(problems, fmt.Sprintf("invalid store backend %q: must be %s or %s", c.StoreBackend, BackendMySQL, BackendMemory))
	}
	if c.SeedOnStart && c.SeedURL == "" {
		problems = append(problems, "SEED_URL is required when SEED_ON_START is enabled")
	}
	if c.SeedTimeout <= 0 {
		problems = append(problems, "SEED_TIMEOUT must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvLevel(key string, def logrus.Level) logrus.Level {
	if lvl, err := logrus.ParseLevel(os.Getenv(key)); err == nil {
		return lvl
	}
	return def
}
