package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type SeatsAeroConfig struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64
	RateBurst     int
}

type ObservabilityConfig struct {
	ServiceName  string
	Environment  string
	OTLPEndpoint string
}

type Config struct {
	AppEnv          string
	AppPort         string
	SnowflakeNodeID int64
	SeatsAero       SeatsAeroConfig
	Observability   ObservabilityConfig
}

// Load reads .env (when present) and the process environment. Every missing
// or malformed variable is reported at once.
func Load() (*Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := envOr("APP_ENV", "development")
	appPort := envOr("APP_PORT", "8080")
	apiKey := mustEnv("SEATS_API_KEY", &errs)
	baseURL := envOr("SEATS_BASE_URL", "https://seats.aero")

	timeoutSeconds := intEnv("UPSTREAM_TIMEOUT_SECONDS", 10, &errs)
	if timeoutSeconds <= 0 {
		errs = append(errs, errors.New("invalid env: UPSTREAM_TIMEOUT_SECONDS must be positive"))
	}
	ratePerSecond := floatEnv("UPSTREAM_RATE_PER_SECOND", 0, &errs)
	rateBurst := intEnv("UPSTREAM_RATE_BURST", 10, &errs)
	nodeID := intEnv("SNOWFLAKE_NODE_ID", 1, &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:          appEnv,
		AppPort:         appPort,
		SnowflakeNodeID: int64(nodeID),
		SeatsAero: SeatsAeroConfig{
			BaseURL:       baseURL,
			APIKey:        apiKey,
			Timeout:       time.Duration(timeoutSeconds) * time.Second,
			RatePerSecond: ratePerSecond,
			RateBurst:     rateBurst,
		},
		Observability: ObservabilityConfig{
			ServiceName:  envOr("OTEL_SERVICE_NAME", "mileage"),
			Environment:  appEnv,
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64, errs *[]error) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return f
}
