package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Producers ProducerConfig
	Flow      FlowConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	GatherTopic        string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

// ProducerConfig holds the endpoints and keys of the external intelligence
// producers. The core only knows their HTTP boundary, not what they compute.
type ProducerConfig struct {
	ResearchURL   string
	ResearchKey   string
	ExtractorURL  string
	ExtractorKey  string
	BrandGuideURL string
	Timeout       int // seconds
}

// FlowConfig carries the readiness thresholds used by the routing engine.
// Two distinct thresholds exist on purpose: SkipAhead gates "enough signal to
// generate", Confirm gates the extra confirmation checkpoint.
type FlowConfig struct {
	SkipAheadScore int
	ConfirmScore   int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			GatherTopic:        getEnv("GATHER_INTELLIGENCE_TOPIC_NAME", "GATHER_INTELLIGENCE"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "BrandLaunch"),
		},
		Producers: ProducerConfig{
			ResearchURL:   getEnv("MARKET_RESEARCH_URL", "http://localhost:8091"),
			ResearchKey:   getEnv("MARKET_RESEARCH_API_KEY", ""),
			ExtractorURL:  getEnv("SITE_EXTRACTOR_URL", "http://localhost:8092"),
			ExtractorKey:  getEnv("SITE_EXTRACTOR_API_KEY", ""),
			BrandGuideURL: getEnv("BRAND_GUIDE_PARSER_URL", "http://localhost:8093"),
			Timeout:       getEnvAsInt("PRODUCER_TIMEOUT_SECONDS", 45),
		},
		Flow: FlowConfig{
			SkipAheadScore: getEnvAsInt("READINESS_SKIP_AHEAD", 50),
			ConfirmScore:   getEnvAsInt("READINESS_CONFIRM", 70),
		},
	}
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
