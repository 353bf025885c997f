package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Notes    NotesConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	// Driver selects the backing store: "postgres" or "memory".
	Driver     string
	Connection string
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// AuthPolicy toggles token enforcement per note operation. The observed
// contract protects only the create path; update and delete stay open unless
// explicitly switched on.
type AuthPolicy struct {
	Create bool
	Update bool
	Delete bool
}

type NotesConfig struct {
	Auth AuthPolicy
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "memory"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			Secret:   getEnv("JWT_SECRET", "default_secret"),
			TokenTTL: time.Duration(getEnvAsInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		},
		Notes: NotesConfig{
			Auth: AuthPolicy{
				Create: getEnvAsBool("NOTE_AUTH_CREATE", true),
				Update: getEnvAsBool("NOTE_AUTH_UPDATE", false),
				Delete: getEnvAsBool("NOTE_AUTH_DELETE", false),
			},
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
