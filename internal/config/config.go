package config

import (
	"os"
	"strings"
)

type Config struct {
	Port           string
	TavilyAPIKey   string
	TavilyBaseURL  string
	GoogleAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	AllowedOrigins []string
	SenderName     string
	SenderRole     string
}

func Load() Config {
	return Config{
		Port:           getEnv("COLDLEADS_PORT", "8000"),
		TavilyAPIKey:   getEnv("TAVILY_API_KEY", ""),
		TavilyBaseURL:  getEnv("TAVILY_BASE_URL", ""),
		GoogleAPIKey:   getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "models/gemini-2.0-flash-lite-preview-09-2025"),
		GeminiBaseURL:  getEnv("GEMINI_BASE_URL", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		SenderName:     getEnv("SENDER_NAME", "Hitanshu"),
		SenderRole:     getEnv("SENDER_ROLE", "GenAI engineer"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
