package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// CommissionRate is the fraction of each referred enrollment's
	// price credited to the referring affiliate/seller.
	CommissionRate float64

	SendgridApiKey string
	EmailSender    string

	// FrontendBaseURL is the base URL of the web frontend; mutating
	// actions POST to its revalidation endpoint to refresh cached pages.
	FrontendBaseURL   string
	RevalidateSecret  string
	RevalidateEnabled bool
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "shikkha"),
		DBPort:     getEnv("DB_PORT", "5432"),

		CommissionRate: getEnvFloat("COMMISSION_RATE", 0.10),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@shikkha.app"),

		FrontendBaseURL:   getEnv("FRONTEND_BASE_URL", "http://localhost:3001"),
		RevalidateSecret:  getEnv("REVALIDATE_SECRET", ""),
		RevalidateEnabled: getEnv("REVALIDATE_ENABLED", "true") == "true",
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.CommissionRate < 0 || AppConfig.CommissionRate > 1 {
		log.Printf("Warning: COMMISSION_RATE %.2f is outside [0,1]. Falling back to 0.10.", AppConfig.CommissionRate)
		AppConfig.CommissionRate = 0.10
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default float value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
