package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	// Firebase
	FirebaseProjectID string
	FirebaseCredJSON  string

	// Firestore collections
	ItemCollection      string
	HouseholdCollection string
	TargetCollection    string

	// Trigger
	APIKey       string
	CronSchedule string
	CronEnabled  bool

	// Push
	PushEnabled bool

	// Logging
	LogLevel  string
	LogFormat string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),

		// Firebase
		FirebaseProjectID: getEnvOrDefault("FIREBASE_PROJECT_ID", ""),
		FirebaseCredJSON:  getEnvOrDefault("FIREBASE_CRED_JSON", ""),

		// Firestore collections
		ItemCollection:      getEnvOrDefault("ITEM_COLLECTION", "items"),
		HouseholdCollection: getEnvOrDefault("HOUSEHOLD_COLLECTION", "households"),
		TargetCollection:    getEnvOrDefault("TARGET_COLLECTION", "user_targets"),

		// Trigger (trim whitespace to avoid common config errors)
		APIKey:       strings.TrimSpace(getEnvOrDefault("TRIGGER_API_KEY", "")),
		CronSchedule: getEnvOrDefault("CRON_SCHEDULE", "0 18 * * *"),
		CronEnabled:  getEnvOrDefault("CRON_ENABLED", "true") == "true",

		// Push
		PushEnabled: getEnvOrDefault("PUSH_ENABLED", "true") == "true",

		// Logging
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", ""),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
