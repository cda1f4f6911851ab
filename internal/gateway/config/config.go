package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Provider string // "groq" (default) | "gemini" | "fake"

	// GroqAPIKey may legitimately be empty: the gate and method check still
	// run, and every analysis request answers 500 until the key is set.
	// Absence is an operator problem, never a startup failure.
	GroqAPIKey   string
	GroqModel    string
	GeminiAPIKey string
	GeminiModel  string

	RateLimit    int
	RateWindow   time.Duration
	RateStoreDSN string
	MaxClients   int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	if provider == "" {
		provider = "groq"
	}

	return &Config{
		Port:         *port,
		Provider:     provider,
		GroqAPIKey:   strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqModel:    strings.TrimSpace(os.Getenv("GROQ_MODEL")),
		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:  strings.TrimSpace(os.Getenv("GEMINI_MODEL")),
		RateLimit:    envInt("RATE_LIMIT", 10),
		RateWindow:   time.Duration(envInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
		RateStoreDSN: strings.TrimSpace(os.Getenv("RATE_STORE_PG_DSN")),
		MaxClients:   envInt("RATE_MAX_CLIENTS", 4096),
	}, nil
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
