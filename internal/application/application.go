package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaminalder/tictactoe-time-travel/internal/app"
	"github.com/jaminalder/tictactoe-time-travel/internal/config"
	"github.com/jaminalder/tictactoe-time-travel/internal/repository"
	"github.com/jaminalder/tictactoe-time-travel/internal/repository/storage"
	"github.com/jaminalder/tictactoe-time-travel/internal/web"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the web application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc := app.NewService(logger, gameRepo)

	srv := &http.Server{
		Addr:              ":" + conf.HTTPPort,
		Handler:           web.NewServer(logger, svc),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		// SSE streams end with the signal so Shutdown does not wait on them
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
		if httpErr := srv.ListenAndServe(); httpErr != nil && !errors.Is(httpErr, http.ErrServerClosed) {
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	log.Info("HTTP server stopped")
	return nil
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryRepository(conf.SessionTTL), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.SessionTTL), closeFn, nil
}
