package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the service configuration.
type Config struct {
	Port            int
	LogLevel        string
	LogFormat       string
	PricingProfile  string
	ProfileFile     string
	CatalogFile     string
	MaxPrice        float64
	MaxDownPayment  float64
	MaxIncome       float64
	OTELEndpoint    string
	OTELServiceName string
	RateLimitRPS    float64
	RateLimitBurst  int
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one is present.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		LogFormat:       getEnvString("LOG_FORMAT", "text"),
		PricingProfile:  getEnvString("PRICING_PROFILE", "standard"),
		ProfileFile:     getEnvString("PROFILE_FILE", ""),
		CatalogFile:     getEnvString("CATALOG_FILE", ""),
		MaxPrice:        getEnvFloat("MAX_PRICE", 1e7),
		MaxDownPayment:  getEnvFloat("MAX_DOWN_PAYMENT", 1e7),
		MaxIncome:       getEnvFloat("MAX_INCOME", 1e9),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "autobudget"),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 40),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
