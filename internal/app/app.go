package app

import (
	"fmt"
	"net/http"

	"github.com/hoopsight/gameplan-gateway/external/analytics"
	"github.com/hoopsight/gameplan-gateway/internal/config"
	"github.com/hoopsight/gameplan-gateway/internal/infrastructure/repository/memory"
	"github.com/hoopsight/gameplan-gateway/internal/interfaces/httpapi"
	"github.com/hoopsight/gameplan-gateway/internal/interfaces/web"
	"github.com/hoopsight/gameplan-gateway/internal/platform/logging"
	"github.com/hoopsight/gameplan-gateway/internal/platform/resilience"
	"github.com/hoopsight/gameplan-gateway/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())

	analyticsClient := analytics.NewClient(analytics.ClientConfig{
		BaseURL: cfg.AnalyticsBaseURL,
		Timeout: cfg.AnalyticsTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AnalyticsCircuitEnabled,
			FailureThreshold: cfg.AnalyticsCircuitFailureCount,
			OpenTimeout:      cfg.AnalyticsCircuitOpenTimeout,
		},
	})

	teamSvc := usecase.NewTeamService(teamRepo)
	gameplanSvc := usecase.NewGameplanService(teamRepo, analyticsClient)
	sweepSvc := usecase.NewSweepService(teamRepo, gameplanSvc, cfg.SweepMaxWorkers)

	apiHandler := httpapi.NewHandler(teamSvc, gameplanSvc, sweepSvc, logger)
	webHandler := web.NewHandler(teamSvc, gameplanSvc, logger)
	router := httpapi.NewRouter(apiHandler, webHandler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
