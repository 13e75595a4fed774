package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/romanlp3005/agent-ia/cmd/mainconfig"
	"github.com/romanlp3005/agent-ia/internal/api/router"
	"github.com/romanlp3005/agent-ia/internal/bookings"
	appconfig "github.com/romanlp3005/agent-ia/internal/config"
	"github.com/romanlp3005/agent-ia/internal/llm"
	"github.com/romanlp3005/agent-ia/internal/notify"
	"github.com/romanlp3005/agent-ia/internal/observability/metrics"
	"github.com/romanlp3005/agent-ia/internal/tenant"
	"github.com/romanlp3005/agent-ia/internal/voice"
	"github.com/romanlp3005/agent-ia/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting agent-ia API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create postgres pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisClient := newRedisClient(cfg)
	tenantStore := tenant.NewCachedStore(tenant.NewRepository(pool), redisClient, cfg.TenantCacheTTL, logger)

	client, model, err := newCompletionClient(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize completion client", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	voiceMetrics := metrics.NewVoiceMetrics(registry)

	notifier := notify.NewBookingNotifier(newEmailSender(ctx, cfg, logger), logger)
	bookingSvc := bookings.NewService(bookings.NewRepository(pool), notifier, logger)

	voiceHandler := voice.NewHandler(tenantStore, client, bookingSvc, voiceMetrics, logger, voice.HandlerConfig{
		SignatureSecret:   cfg.TwilioAuthToken,
		Model:             model,
		MaxTokens:         int32(cfg.CompletionMaxTokens),
		CompletionTimeout: cfg.CompletionTimeout,
		BookingTimeout:    cfg.BookingWriteTTL,
		GatherTimeout:     strconv.Itoa(int(cfg.GatherTimeout / time.Second)),
		SpeechTimeout:     cfg.SpeechTimeout,
	})

	r := router.New(&router.Config{
		Logger:          logger,
		VoiceHandler:    voiceHandler,
		BookingsHandler: bookings.NewHandler(bookingSvc, logger),
		MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func newRedisClient(cfg *appconfig.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(opts)
}

// newCompletionClient picks the completion provider. "gemini" and "bedrock"
// force one provider; "auto" wires Gemini with Bedrock as fallback when
// both are configured.
func newCompletionClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (llm.Client, string, error) {
	var gemini llm.Client
	if cfg.GeminiAPIKey != "" && cfg.LLMProvider != "bedrock" {
		g, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			return nil, "", fmt.Errorf("gemini client: %w", err)
		}
		gemini = g
	}

	var bedrock llm.Client
	if cfg.BedrockModelID != "" && cfg.LLMProvider != "gemini" {
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, "", fmt.Errorf("aws config: %w", err)
		}
		bedrock = llm.NewBedrockClient(bedrockruntime.NewFromConfig(awsCfg))
	}

	switch {
	case gemini != nil && bedrock != nil:
		logger.Info("completion provider: gemini with bedrock fallback")
		return llm.NewFallbackClient(gemini, bedrock, logger), cfg.GeminiModelID, nil
	case gemini != nil:
		logger.Info("completion provider: gemini")
		return gemini, cfg.GeminiModelID, nil
	case bedrock != nil:
		logger.Info("completion provider: bedrock")
		return bedrock, cfg.BedrockModelID, nil
	default:
		return nil, "", fmt.Errorf("no completion provider configured (set GEMINI_API_KEY or BEDROCK_MODEL_ID)")
	}
}

func newEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		if s := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); s != nil {
			return s
		}
	case "ses":
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config for SES, email disabled", "error", err)
			break
		}
		if s := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger); s != nil {
			return s
		}
	}
	logger.Info("email notifications disabled")
	return nil
}
