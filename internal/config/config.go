package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration values.
type Config struct {
	// Kafka
	KafkaBrokers []string
	Topic        string

	// Samples
	SamplesPath  string
	SendInterval time.Duration

	// HTTP server (health endpoint)
	HTTPAddr string

	// Azure Health Data Services passthrough. Logged at startup for
	// deployment parity with the downstream FHIR sink; never used to
	// alter publish behavior.
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string
	AzureFHIRURL      string
	AzureScope        string

	// Application
	Environment string
	LogLevel    string
}

// New creates a Config populated from environment variables with sensible defaults.
func New() *Config {
	return &Config{
		KafkaBrokers: strings.Split(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092"), ","),
		Topic:        getEnv("KAFKA_TOPIC", "fhir-resources"),
		SamplesPath:  getEnv("FHIR_SAMPLES_PATH", "/app/samples"),
		SendInterval: time.Duration(getEnvPositiveInt("SEND_INTERVAL_SECONDS", 10)) * time.Second,
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),

		AzureTenantID:     getEnv("AZURE_TENANT_ID", ""),
		AzureClientID:     getEnv("AZURE_CLIENT_ID", ""),
		AzureClientSecret: getEnv("AZURE_CLIENT_SECRET", ""),
		AzureFHIRURL:      getEnv("AZURE_FHIR_URL", ""),
		AzureScope:        getEnv("AZURE_SCOPE", "https://azurehealthcareapis.com/.default"),

		Environment: getEnv("ENVIRONMENT", "local"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvPositiveInt falls back for unparseable and non-positive values;
// a zero or negative send interval would turn the send loop into a spin.
func getEnvPositiveInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
