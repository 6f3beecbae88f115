package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/pwned-go/internal/platform/logging"
)

const (
	TransportHTTP     = "http"
	TransportFastHTTP = "fasthttp"
)

// Config stores runtime configuration for pwnedctl.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	PwnedBaseURL               string
	PwnedPublicKey             string
	PwnedPrivateKey            string
	PwnedTimeout               time.Duration
	PwnedTransport             string
	PwnedCircuitEnabled        bool
	PwnedCircuitFailureCount   int
	PwnedCircuitOpenTimeout    time.Duration
	PwnedCircuitHalfOpenMaxReq int
	UptraceEnabled             bool
	UptraceDSN                 string
	LogLevel                   logging.Level
}

// LoadDotEnv reads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	baseURL := strings.TrimSpace(getEnv("PWNED_BASE_URL", ""))
	if baseURL == "" {
		return Config{}, fmt.Errorf("PWNED_BASE_URL is required")
	}
	if parsed, err := url.Parse(baseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid PWNED_BASE_URL %q", baseURL)
	}

	publicKey := strings.TrimSpace(getEnv("PWNED_PUBLIC_KEY", ""))
	if publicKey == "" {
		return Config{}, fmt.Errorf("PWNED_PUBLIC_KEY is required")
	}
	privateKey := getEnv("PWNED_PRIVATE_KEY", "")
	if privateKey == "" {
		return Config{}, fmt.Errorf("PWNED_PRIVATE_KEY is required")
	}

	// Zero keeps requests bounded only by the caller's context.
	timeout, err := time.ParseDuration(getEnv("PWNED_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PWNED_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("PWNED_TIMEOUT must be >= 0")
	}

	transport, err := parseTransport(getEnv("PWNED_TRANSPORT", TransportHTTP))
	if err != nil {
		return Config{}, err
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("PWNED_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PWNED_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("PWNED_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse PWNED_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount <= 0 {
		return Config{}, fmt.Errorf("PWNED_CIRCUIT_FAILURE_COUNT must be > 0")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("PWNED_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PWNED_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("PWNED_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("PWNED_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse PWNED_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq <= 0 {
		return Config{}, fmt.Errorf("PWNED_CIRCUIT_HALF_OPEN_MAX_REQ must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	logLevelDefault := "warn"
	if appEnv == EnvDev {
		logLevelDefault = "info"
	}

	return Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("SERVICE_NAME", "pwnedctl"),
		ServiceVersion:             getEnv("SERVICE_VERSION", "dev"),
		PwnedBaseURL:               baseURL,
		PwnedPublicKey:             publicKey,
		PwnedPrivateKey:            privateKey,
		PwnedTimeout:               timeout,
		PwnedTransport:             transport,
		PwnedCircuitEnabled:        circuitEnabled,
		PwnedCircuitFailureCount:   circuitFailureCount,
		PwnedCircuitOpenTimeout:    circuitOpenTimeout,
		PwnedCircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		LogLevel:                   parseLogLevel(getEnv("LOG_LEVEL", logLevelDefault)),
	}, nil
}

func parseTransport(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case TransportHTTP, TransportFastHTTP:
		return value, nil
	default:
		return "", fmt.Errorf("invalid PWNED_TRANSPORT %q: valid values are %s, %s", v, TransportHTTP, TransportFastHTTP)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
