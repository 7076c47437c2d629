package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"listing-service/internal/adapters/fallback"
	logger_adapter "listing-service/internal/adapters/logger"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/pkg/fluentlogger"
	"listing-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	dbPool         *pgxpool.Pool
	eventPublisher *rabbitmq_adapter.PropertyEventsPublisher
	logger         port.LoggerPort
	fluentClient   *fluent.Fluent
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// 1. Loggers.
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// 2. Storage. A missing or unreachable database is not fatal: the
	// service boots in degraded mode and the listing endpoint serves the
	// built-in fallback dataset. Admin CRUD, analytics and auth return
	// errors until a working DATABASE_URL is provided and the service is
	// restarted.
	storeHealth := &domain.StoreHealth{}

	var dbPool *pgxpool.Pool
	var propertyStorage port.PropertyStoragePort
	var teamStorage port.TeamStoragePort
	var analyticsStorage port.AnalyticsStoragePort
	var userStorage port.UserStoragePort

	if appConfig.Database.URL == "" {
		appLogger.Warn("DATABASE_URL is not set, starting in degraded mode", nil)
	} else {
		dbPool, err = postgres.NewClient(context.Background(), postgres.Config{
			DatabaseURL: appConfig.Database.URL,
		})
		if err != nil {
			appLogger.Error("Failed to connect to database, starting in degraded mode", err, nil)
			dbPool = nil
		}
	}

	if dbPool != nil {
		propertyAdapter, err := postgres_adapter.NewPropertyStorageAdapter(dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create property storage adapter: %w", err)
		}
		teamAdapter, err := postgres_adapter.NewTeamStorageAdapter(dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create team storage adapter: %w", err)
		}
		analyticsAdapter, err := postgres_adapter.NewAnalyticsStorageAdapter(dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create analytics storage adapter: %w", err)
		}
		userAdapter, err := postgres_adapter.NewUserStorageAdapter(dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create user storage adapter: %w", err)
		}
		propertyStorage = propertyAdapter
		teamStorage = teamAdapter
		analyticsStorage = analyticsAdapter
		userStorage = userAdapter
		appLogger.Info("PostgreSQL storage initialized", nil)
	}

	fallbackProvider := fallback.NewProvider(nil)

	// 3. Events. Publishing is optional; without RABBITMQ_URL the write
	// path simply skips event emission.
	var eventPublisher *rabbitmq_adapter.PropertyEventsPublisher
	var publisherPort port.PropertyEventPublisherPort
	if appConfig.RabbitMQ.Enabled {
		eventPublisher, err = rabbitmq_adapter.NewPropertyEventsPublisher(
			appConfig.RabbitMQ.URL,
			constants.PropertyEventsExchange,
			constants.RoutingKeyPropertyEvents,
		)
		if err != nil {
			appLogger.Error("Failed to create event publisher", err, nil)
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		publisherPort = eventPublisher
		appLogger.Info("RabbitMQ event publisher initialized", nil)
	} else {
		appLogger.Info("RABBITMQ_URL is not set, property events disabled", nil)
	}

	// 4. Use cases.
	listPropertiesUseCase := usecase.NewListPropertiesUseCase(propertyStorage, fallbackProvider, storeHealth)
	getPropertyUseCase := usecase.NewGetPropertyUseCase(propertyStorage)
	getRelatedPropertiesUseCase := usecase.NewGetRelatedPropertiesUseCase(propertyStorage)
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(propertyStorage, publisherPort)
	updatePropertyUseCase := usecase.NewUpdatePropertyUseCase(propertyStorage, publisherPort)
	deletePropertyUseCase := usecase.NewDeletePropertyUseCase(propertyStorage, publisherPort)
	teamUseCase := usecase.NewTeamUseCase(teamStorage)
	trackVisitUseCase := usecase.NewTrackVisitUseCase(analyticsStorage)
	analyticsUseCase := usecase.NewAnalyticsUseCase(analyticsStorage)
	authUseCase := usecase.NewAuthUseCase(userStorage, []byte(appConfig.Auth.JWTSecret), appConfig.Auth.TokenTTL)

	appLogger.Info("All use cases initialized", nil)

	// 5. REST surface.
	propertyHandlers := rest.NewPropertyHandlers(
		listPropertiesUseCase,
		getPropertyUseCase,
		getRelatedPropertiesUseCase,
		createPropertyUseCase,
		updatePropertyUseCase,
		deletePropertyUseCase,
	)
	teamHandlers := rest.NewTeamHandlers(teamUseCase)
	analyticsHandlers := rest.NewAnalyticsHandlers(trackVisitUseCase, analyticsUseCase)
	authHandlers := rest.NewAuthHandlers(authUseCase)
	healthHandlers := rest.NewHealthHandlers(storeHealth)

	apiServer := rest.NewServer(
		appConfig.Rest.Port,
		propertyHandlers,
		teamHandlers,
		analyticsHandlers,
		authHandlers,
		healthHandlers,
		authUseCase,
		baseLogger,
	)

	return &App{
		config:         appConfig,
		apiServer:      apiServer,
		dbPool:         dbPool,
		eventPublisher: eventPublisher,
		logger:         appLogger,
		fluentClient:   fluentClient,
	}, nil
}

// Run starts the HTTP server and blocks until an OS signal or a server
// error, then shuts the components down in reverse order.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventPublisher != nil {
			if err := a.eventPublisher.Close(); err != nil {
				a.logger.Error("Error closing event publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Log to stdout, fluent may already be unreachable.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: unknown log level %q, defaulting to info.\n", levelStr)
		return slog.LevelInfo
	}
}
