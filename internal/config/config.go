package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port          string
	Env           string
	PublicBaseURL string

	// Catalog
	CatalogPath string

	// LLM
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	LLMTimeout    time.Duration
	NewsCacheTTL  time.Duration

	// Email
	BrevoAPIKey     string
	BrevoBaseURL    string
	MailSenderName  string
	MailSenderEmail string
	MaxReportMB     float64

	// Admin
	AdminAPIKey string

	// Reminders
	ReminderCron        string
	ReminderDelay       time.Duration
	ReminderConcurrency int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "https://money-harbor.vercel.app"),

		CatalogPath: getEnv("CATALOG_PATH", ""),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),

		BrevoAPIKey:     getEnv("BREVO_API_KEY", ""),
		BrevoBaseURL:    getEnv("BREVO_BASE_URL", "https://api.brevo.com/v3"),
		MailSenderName:  getEnv("MAIL_SENDER_NAME", "MoneyHarbor"),
		MailSenderEmail: getEnv("MAIL_SENDER_EMAIL", "noreply@moneyharbor.online"),

		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),

		ReminderCron: getEnv("REMINDER_CRON", "@every 15m"),
	}

	// The UI ships a placeholder key in its sample env; treat it as unset.
	if config.OpenAIAPIKey == "your-api-key-here" {
		config.OpenAIAPIKey = ""
	}

	config.LLMTimeout = getDuration("LLM_TIMEOUT", 30*time.Second)
	config.NewsCacheTTL = getDuration("NEWS_CACHE_TTL", 4*time.Hour)
	config.ReminderDelay = getDuration("REMINDER_DELAY", 180*24*time.Hour)
	config.MaxReportMB = getFloat("MAX_REPORT_MB", 25)
	config.ReminderConcurrency = getInt("REMINDER_CONCURRENCY", 4)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %v\n", key, raw, defaultValue)
		return defaultValue
	}
	return f
}

func getInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}
