package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Database drivers supported by the database manager.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration
type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Database
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string
	MigrationsPath string
	MigrationToken string

	// Demo user the API acts on behalf of
	DemoUserEmail string
	DemoUserName  string

	// Events
	AMQPURL      string
	AMQPExchange string

	// Auto-invest; an empty cron spec disables the job
	AutoInvestCron      string
	AutoInvestPortfolio string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		// Database
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "gulfacorns"),
		DBPassword:     getEnv("DB_PASSWORD", "gulfacorns"),
		DBName:         getEnv("DB_NAME", "gulfacorns"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBPath:         getEnv("DB_PATH", "gulfacorns.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		MigrationToken: getEnv("MIGRATION_TOKEN", ""),

		DemoUserEmail: getEnv("DEMO_USER_EMAIL", "demo@gulfacorns.dev"),
		DemoUserName:  getEnv("DEMO_USER_NAME", "Demo User"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "gulfacorns.events"),

		AutoInvestCron:      getEnv("AUTO_INVEST_CRON", ""),
		AutoInvestPortfolio: getEnv("AUTO_INVEST_PORTFOLIO", "balanced"),
	}

	if config.DBDriver != DriverPostgres && config.DBDriver != DriverSQLite {
		log.Printf("Warning: unknown DB_DRIVER %q, falling back to %s\n", config.DBDriver, DriverPostgres)
		config.DBDriver = DriverPostgres
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
