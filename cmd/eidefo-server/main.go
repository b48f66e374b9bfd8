package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eidefo/eidefo/internal/config"
	"github.com/eidefo/eidefo/internal/domain/evaluation"
	"github.com/eidefo/eidefo/internal/domain/session"
	"github.com/eidefo/eidefo/internal/platform/auth"
	"github.com/eidefo/eidefo/internal/platform/middleware"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "eidefo-server",
		Short: "Swallowing evaluation API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the evaluation API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Token issuing and revocation
	jwtCfg := auth.JWTConfig{
		Issuer:     cfg.AuthIssuer,
		Audience:   cfg.AuthAudience,
		SigningKey: []byte(cfg.AuthSecret),
		TTL:        cfg.TokenTTL(),
	}
	revocations := auth.NewTokenRevocationStore()
	defer revocations.Close()

	// API groups: login is public, everything else requires a token
	api := e.Group("/api")
	api.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
	api.Use(middleware.Audit(logger))
	protected := api.Group("", auth.JWTMiddleware(jwtCfg, revocations))

	authHandler := auth.NewHandler(jwtCfg, revocations)
	authHandler.RegisterRoutes(api, protected)

	// Evaluation sessions
	registry := evaluation.NewRegistry()
	repo := session.NewMemoryRepository(registry)
	svc := session.NewService(repo, registry, cfg.SessionTTL(), cfg.MaxSessions, logger)
	sessionHandler := session.NewHandler(svc)
	sessionHandler.RegisterRoutes(protected)

	// Expired-session janitor
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go svc.RunJanitor(janitorCtx, cfg.SessionSweep())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
