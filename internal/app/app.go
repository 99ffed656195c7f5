package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/config"
	"github.com/fsdevblog/shortlinks/internal/controllers"
	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/logs"
	"github.com/fsdevblog/shortlinks/internal/metrics"
	"github.com/fsdevblog/shortlinks/internal/services"
)

type App struct {
	config     config.Config
	dbServices *services.Services
	metrics    *metrics.Metrics
	closeDB    func() error
	Logger     *zap.Logger
}

// New открывает хранилище и собирает сервисный слой приложения.
func New(ctx context.Context, conf config.Config) (*App, error) {
	logger, logErr := logs.New(logs.WithLevel(conf.LogLevel), logs.WithEncoding(conf.LogEncoding))
	if logErr != nil {
		return nil, fmt.Errorf("init logger: %w", logErr)
	}

	m := metrics.New()
	dbServices, closeDB, servicesErr := initServices(ctx, conf, logger, m)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     conf,
		dbServices: dbServices,
		metrics:    m,
		closeDB:    closeDB,
		Logger:     logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Handler возвращает http обработчик приложения.
func (a *App) Handler() http.Handler {
	return controllers.SetupRouter(controllers.RouterParams{
		LinkService:    a.dbServices.LinkService,
		PingService:    a.dbServices.PingService,
		Metrics:        a.metrics,
		Logger:         a.Logger,
		BaseURL:        a.config.BaseURL,
		RequestTimeout: a.config.RequestTimeout,
	})
}

// Run запускает web сервер и блокируется до SIGINT/SIGTERM или ошибки сервера.
// Незавершенные запросы получают ShutdownTimeout на завершение.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		if err := a.closeDB(); err != nil {
			a.Logger.Error("close storage", zap.Error(err))
		}
		_ = a.Logger.Sync()
	}()

	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.Handler(),
		ReadHeaderTimeout: a.config.RequestTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		a.Logger.Info("Server listening", zap.String("address", a.config.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		if serverErr != nil {
			a.Logger.Error("server error", zap.Error(serverErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("graceful shutdown failed", zap.Error(err))
		serverErr = errors.Join(serverErr, err)
	}
	return serverErr
}

// initServices создает подключение к хранилищу и возвращает сервисный слой вместе с функцией закрытия.
func initServices(
	ctx context.Context,
	conf config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
) (*services.Services, func() error, error) {
	conn, connErr := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType:  db.StorageType(conf.StorageType),
		PostgresDSN:  &conf.DatabaseDSN,
		SqliteDBPath: &conf.SQLitePath,
		Debug:        conf.DBDebug,
	})
	if connErr != nil {
		return nil, nil, connErr //nolint:wrapcheck
	}

	dbServices, dbServErr := services.Factory(conn, whatIsServiceType(conf),
		services.WithLogger(logger),
		services.WithMetrics(m),
		services.WithMaxSlugAttempts(conf.MaxSlugAttempts),
	)
	if dbServErr != nil {
		return nil, nil, dbServErr //nolint:wrapcheck
	}
	return dbServices, closerFor(conn), nil
}

func whatIsServiceType(conf config.Config) services.ServiceType {
	if conf.StorageType == config.StorageTypeInMemory {
		return services.ServiceTypeInMemory
	}
	return services.ServiceTypeSQL
}

// closerFor возвращает функцию закрытия соединения. In-memory хранилище закрывать не нужно.
func closerFor(conn any) func() error {
	if c, ok := conn.(interface{ Close() error }); ok {
		return c.Close
	}
	if g, ok := conn.(interface{ DB() (*sql.DB, error) }); ok {
		return func() error {
			sqlDB, err := g.DB()
			if err != nil {
				return fmt.Errorf("get sql.DB: %w", err)
			}
			return sqlDB.Close() //nolint:wrapcheck
		}
	}
	return func() error { return nil }
}
