package config

import (
	"os"
	"strings"
)

type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Postgres PostgresConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

type AIConfig struct {
	APIKey     string
	ChatModel  string
	EmbedModel string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port: getenv("PORT", "8080"),
		},
		AI: AIConfig{
			APIKey:     os.Getenv("AI_API_KEY"),
			ChatModel:  getenv("AI_CHAT_MODEL", "gemini-2.0-flash"),
			EmbedModel: getenv("AI_EMBED_MODEL", "gemini-embedding-001"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
			AllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
