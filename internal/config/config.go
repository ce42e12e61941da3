package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	UploadDir string
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment. MONGO_URI is mandatory; everything else has a
// sensible default.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    getEnv("DB_NAME", "travelplanner"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is not set")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
