package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Ai           AIConfig
	ShoppingList ShoppingListConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsEnabled        bool
	NatsURL            string
	RedisURL           string
}

type AIConfig struct {
	LLMProvider        string // "ollama" or "huggingface"
	LLMModel           string // e.g. "llama3", "qwen2.5"
	OllamaBaseURL      string
	HuggingFaceAPIKey  string
	HuggingFaceBaseURL string
	Temperature        float64
	Timeout            time.Duration // Bounds a single model call
}

type ShoppingListConfig struct {
	Store              string // "memory" or "redis"
	TTL                time.Duration
	GeneratedTopicName string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsEnabled:        getEnvAsBool("NATS_ENABLED", false),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:           getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HuggingFaceAPIKey:  getEnv("HUGGINGFACE_API_KEY", ""),
			HuggingFaceBaseURL: getEnv("HUGGINGFACE_BASE_URL", ""),
			Temperature:        getEnvAsFloat("LLM_TEMPERATURE", 0.3),
			Timeout:            time.Duration(getEnvAsInt("LLM_TIMEOUT_SECONDS", 90)) * time.Second,
		},
		ShoppingList: ShoppingListConfig{
			Store:              getEnv("SHOPPING_LIST_STORE", "memory"),
			TTL:                time.Duration(getEnvAsInt("SHOPPING_LIST_TTL_MINUTES", 60)) * time.Minute,
			GeneratedTopicName: getEnv("GENERATED_TOPIC_NAME", "SHOPPING_LIST_GENERATED"),
		},
	}
}

// BaseURLForProvider returns the endpoint configured for the selected LLM provider.
func (a AIConfig) BaseURLForProvider() string {
	if a.LLMProvider == "huggingface" {
		return a.HuggingFaceBaseURL
	}
	return a.OllamaBaseURL
}

// APIKeyForProvider returns the credential configured for the selected LLM provider.
func (a AIConfig) APIKeyForProvider() string {
	if a.LLMProvider == "huggingface" {
		return a.HuggingFaceAPIKey
	}
	return ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
