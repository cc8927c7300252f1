package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the service.
type Config struct {
	Port        string
	DatabaseDSN string
	RedisAddr   string
	TrainerAddr string
	ImagesDir   string
	ModelsDir   string
	TrainSplit  float64
	Env         string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if present) > default.
func Load() Config {
	// missing .env is fine; env vars still apply
	_ = godotenv.Load()

	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "facerecognition.sqlite")
	cfg.RedisAddr = getEnv("REDIS_ADDR", "redis:6379")
	cfg.TrainerAddr = getEnv("TRAINER_ADDR", "trainer:50051")
	cfg.ImagesDir = getEnv("IMAGES_DIR", "images")
	cfg.ModelsDir = getEnv("MODELS_DIR", "models")
	cfg.TrainSplit = ParseFloat("TRAIN_SPLIT", 0.8)
	cfg.Env = getEnv("APP_ENV", "development")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseFloat reads an env var as float64 with default.
func ParseFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("invalid float for %s: %s", key, v)
			return def
		}
		return f
	}
	return def
}
