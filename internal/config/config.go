package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultAccessTokenMinutes = 60 * 24

var (
	ErrMissingJWTSecret    = errors.New("no JWT_SECRET provided")
	ErrMissingDatabaseURL  = errors.New("no DB_CONNECTION_STRING provided")
	ErrInvalidTokenMinutes = errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
)

type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	AccessTokenTTL time.Duration
	AllowedOrigins []string
}

// Load reads the .env file when present and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}
	return fromEnv()
}

func fromEnv() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DB_CONNECTION_STRING", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}

	minutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", strconv.Itoa(defaultAccessTokenMinutes)))
	if err != nil || minutes <= 0 {
		return Config{}, ErrInvalidTokenMinutes
	}
	cfg.AccessTokenTTL = time.Duration(minutes) * time.Minute

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
