// Package pwned is a client for the Pwned tournament and league service.
// Every call is signed with the account's key pair, sent as one HTTP round
// trip and mapped into the records of the model package.
package pwned

import (
	"net/http"
	"runtime"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/pwned-go/internal/platform/logging"
	"github.com/riskibarqy/pwned-go/internal/platform/resilience"
	"go.uber.org/zap"
)

const Version = "0.3.0"

type CircuitBreakerConfig = resilience.CircuitBreakerConfig

type ClientConfig struct {
	BaseURL    string `validate:"required,url"`
	PublicKey  string `validate:"required"`
	PrivateKey string `validate:"required"`

	// Transport overrides HTTPClient when set.
	Transport  Transport
	HTTPClient *http.Client
	// Timeout applies to the default transport only. Zero leaves requests
	// unbounded except by the caller's context.
	Timeout time.Duration

	Logger         *zap.Logger
	CircuitBreaker CircuitBreakerConfig
}

type Client struct {
	baseURL    string
	publicKey  string
	privateKey string
	userAgent  string
	transport  Transport
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

var configValidator = validator.New()

func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.PublicKey = strings.TrimSpace(cfg.PublicKey)
	if err := configValidator.Struct(cfg); err != nil {
		return nil, crerr.Wrap(err, "invalid pwned client config")
	}

	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	transport := cfg.Transport
	if transport == nil {
		httpClient := cfg.HTTPClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		}
		transport = NewHTTPTransport(httpClient)
	}

	logger := logging.NewNop()
	if cfg.Logger != nil {
		logger = logging.FromZap(cfg.Logger.Named("pwned"))
	}

	var breaker *resilience.CircuitBreaker
	if cfg.CircuitBreaker.Enabled {
		breaker = resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
		breaker.OnStateChange(func(from, to resilience.CircuitState) {
			logger.Warn("pwned circuit breaker state changed", "from", from, "to", to)
		})
	}

	return &Client{
		baseURL:    baseURL,
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		userAgent:  userAgent(),
		transport:  transport,
		logger:     logger,
		breaker:    breaker,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) headers() http.Header {
	header := make(http.Header, 2)
	header.Set("Content-Type", "application/json")
	header.Set("User-Agent", c.userAgent)
	return header
}

func userAgent() string {
	return "go-pwned-api/" + Version + "/" + strings.TrimPrefix(runtime.Version(), "go")
}
