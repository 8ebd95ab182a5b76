// Package main is the entry point for the En Uygun Uçak Bileti service.
//
//	@title						En Uygun Uçak Bileti API
//	@version					1.0.0
//	@description				Türkiye iç hat uçuşları için bilet arama, analiz ve takip servisi.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/VVuslat/En-Uygun-U-ak-Bileti/issues
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/VVuslat/En-Uygun-U-ak-Bileti/docs"

	ucakhttp "github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/adapter/http"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/adapter/http/middleware"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/adapter/provider/amadeus"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/adapter/provider/simulated"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/config"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/infrastructure/logger"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/notifier"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/storage/sqlite"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/usecase"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/pkg/metrics"
)

const (
	shutdownTimeout    = 10 * time.Second
	alertCheckInterval = 15 * time.Minute
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "ucak-bileti",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("Failed to open database")
	}
	defer store.Close()

	registry := buildProviders(cfg, log)
	m := metrics.New("ucak_bileti")

	searchUseCase := usecase.NewSearchUseCase(registry, &usecase.Config{
		GlobalTimeout:   cfg.Timeouts.GlobalSearch,
		ProviderTimeout: cfg.Timeouts.PerProvider,
		CacheLimit:      cfg.Cache.MaxEntries,
		OnProviderError: func(provider string) {
			m.ProviderErrors.WithLabelValues(provider).Inc()
		},
	}, nil, log.Logger)

	analyzer := usecase.NewAnalyzer(nil)
	userUseCase := usecase.NewUserUseCase(store, nil)

	dispatcher := notifier.NewDispatcher([]notifier.Sender{
		notifier.NewEmailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Address, cfg.SMTP.Password, log.Logger),
		notifier.NewSMSSender(log.Logger),
		notifier.NewPushSender(log.Logger),
	}, nil, log.Logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	handler := ucakhttp.NewHandler(searchUseCase, analyzer, userUseCase, dispatcher, m)
	ucakhttp.RegisterRoutes(e, handler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Background price-alert checks over the saved searches
	alertCtx, stopAlerts := context.WithCancel(context.Background())
	defer stopAlerts()
	checker := usecase.NewAlertChecker(store, searchUseCase, dispatcher, log.Logger)
	go runAlertChecker(alertCtx, checker, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildProviders registers the simulated airline providers and, when an API
// key is configured, the Amadeus provider with a simulated fallback.
func buildProviders(cfg *config.Config, log *logger.Logger) *domain.ProviderRegistry {
	registry := domain.NewProviderRegistry()

	var fallback domain.OfferProvider
	for _, airline := range simulated.Airlines {
		adapter := simulated.NewAdapter(airline, nil, 0)
		registry.Register(adapter)
		if fallback == nil {
			fallback = adapter
		}
	}

	if cfg.Providers.AmadeusAPIKey != "" {
		registry.Register(amadeus.NewAdapter(
			cfg.Providers.AmadeusBaseURL,
			cfg.Providers.AmadeusAPIKey,
			fallback,
			log.Logger,
		))
		log.Info().Msg("Amadeus provider registered")
	}

	log.Info().Strs("providers", registry.Names()).Msg("Providers registered")
	return registry
}

// runAlertChecker periodically re-runs the saved searches with a price
// target and dispatches alerts for matching offers.
func runAlertChecker(ctx context.Context, checker *usecase.AlertChecker, log *logger.Logger) {
	ticker := time.NewTicker(alertCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			checked, alerted, err := checker.CheckSavedSearches(ctx)
			if err != nil {
				log.Error().Err(err).Msg("Alert check failed")
				continue
			}
			log.Info().
				Int("checked", checked).
				Int("alerted", alerted).
				Msg("Alert check completed")
		}
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
