package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/pwned-go/external/pwned"
	"github.com/riskibarqy/pwned-go/internal/config"
	"github.com/riskibarqy/pwned-go/internal/observability"
	"github.com/riskibarqy/pwned-go/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.AppEnv == config.EnvDev)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	client, err := newClient(cfg, logger)
	if err != nil {
		logger.Error("build pwned client", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := &commandLine{client: client, logger: logger, out: os.Stdout}
	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		logger.Error("command failed", "args", os.Args[1:], "error", err)
		return 1
	}
	return 0
}

func newClient(cfg config.Config, logger *logging.Logger) (*pwned.Client, error) {
	clientCfg := pwned.ClientConfig{
		BaseURL:    cfg.PwnedBaseURL,
		PublicKey:  cfg.PwnedPublicKey,
		PrivateKey: cfg.PwnedPrivateKey,
		Logger:     logger.Zap(),
		CircuitBreaker: pwned.CircuitBreakerConfig{
			Enabled:          cfg.PwnedCircuitEnabled,
			FailureThreshold: cfg.PwnedCircuitFailureCount,
			OpenTimeout:      cfg.PwnedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PwnedCircuitHalfOpenMaxReq,
		},
	}

	switch cfg.PwnedTransport {
	case config.TransportFastHTTP:
		clientCfg.Transport = pwned.NewFastTransport(nil, cfg.PwnedTimeout)
	default:
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.PwnedTimeout}
	}

	return pwned.NewClient(clientCfg)
}
