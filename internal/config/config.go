package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode string
	Client  ClientConfig
	Server  ServerConfig
}

// ClientConfig holds configuration for the desk console and its stores
type ClientConfig struct {
	APIBaseURL  string
	Timeout     time.Duration
	StateDir    string
	RefreshSpec string // cron spec for the background refresher
}

// ServerConfig holds configuration for the local stub API server
type ServerConfig struct {
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
}

// DatabaseConfig holds database configuration for the stub server
type DatabaseConfig struct {
	Driver   string // "sqlite" or "mysql"
	Path     string // sqlite file path
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds token signing configuration for the stub server
type JWTConfig struct {
	Secret     string
	ExpiryMins int
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	timeoutSecs, _ := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "10"))
	expiryMins, _ := strconv.Atoi(getEnv("TOKEN_MINUTES", "480"))

	stateDir := getEnv("DESK_STATE_DIR", "")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state dir: %w", err)
		}
		stateDir = home + "/.sacco-desk"
	}

	config := &Config{
		AppMode: appMode,
		Client: ClientConfig{
			APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8000/api"),
			Timeout:     time.Duration(timeoutSecs) * time.Second,
			StateDir:    stateDir,
			RefreshSpec: getEnv("REFRESH_CRON", "@every 5m"),
		},
		Server: ServerConfig{
			Port:     getEnv("PORT", "8000"),
			Database: loadDatabaseConfig(appMode),
			JWT: JWTConfig{
				Secret:     getEnv("JWT_SECRET", "default_secret"),
				ExpiryMins: expiryMins,
			},
		},
	}

	return config, nil
}

// loadDatabaseConfig loads stub-server database config based on mode.
// Dev defaults to a local sqlite file; prod mode keeps the mysql layout.
func loadDatabaseConfig(mode string) DatabaseConfig {
	driver := getEnv("DB_DRIVER", "sqlite")
	if mode == "prod" {
		driver = getEnv("DB_DRIVER", "mysql")
	}

	return DatabaseConfig{
		Driver:   driver,
		Path:     getEnv("DB_PATH", "sacco.db"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "sacco_desk"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}
