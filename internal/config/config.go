package config

import (
	"os"
)

type Config struct {
	Port        string
	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPath      string
	TokenSecret string
	GinMode     string
	FrontendURL string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "taskturkey"),
		DBPassword:  getEnv("DB_PASSWORD", "taskturkey"),
		DBName:      getEnv("DB_NAME", "taskturkey"),
		DBPath:      getEnv("DB_PATH", ":memory:"),
		TokenSecret: getEnv("TOKEN_SECRET", "default-secret-key-change-me"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
