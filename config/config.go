package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL      string
	MongoURL         string
	MongoDB          string
	NotifStore       string // postgres | mongo
	Port             string
	JWTSecret        string
	JWTRefreshSecret string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:      os.Getenv("POSTGRES_URL"),
		MongoURL:         os.Getenv("MONGO_URL"),
		MongoDB:          os.Getenv("MONGO_DB"),
		NotifStore:       os.Getenv("NOTIF_STORE"),
		Port:             os.Getenv("PORT"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.NotifStore == "" {
		cfg.NotifStore = "postgres"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "bookingtrack"
	}
	if cfg.JWTRefreshSecret == "" {
		cfg.JWTRefreshSecret = cfg.JWTSecret
	}
	return cfg
}
