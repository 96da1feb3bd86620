package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Admin struct {
	Username string
	Email    string
	Password string
}

type Config struct {
	ServerPort       int
	SessionCookie    string
	DefaultPageLimit int
	MaxPageLimit     int
	HomePerPage      int
	Admin            Admin
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func LoadAdmin() Admin {
	return Admin{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Email:    getEnv("ADMIN_EMAIL", "admin@test.com"),
		Password: getEnv("ADMIN_PASSWORD", "123"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:       getEnvAsInt("SERVER_PORT", 8080),
		SessionCookie:    getEnv("SESSION_COOKIE", "user_id"),
		DefaultPageLimit: getEnvAsInt("DEFAULT_PAGE_LIMIT", 10),
		MaxPageLimit:     getEnvAsInt("MAX_PAGE_LIMIT", 100),
		HomePerPage:      getEnvAsInt("HOME_PER_PAGE", 5),
		Admin:            LoadAdmin(),
	}
}
