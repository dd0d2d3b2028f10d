package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jdecked/cs152-final/internal/config"
	"github.com/jdecked/cs152-final/internal/repository"
	"github.com/jdecked/cs152-final/internal/repository/storage"
	"github.com/jdecked/cs152-final/internal/tictactoe"
	"github.com/jdecked/cs152-final/internal/usecase"
	"github.com/jdecked/cs152-final/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	engine, err := tictactoe.NewEngine(conf.Engine.Rules(), conf.Engine.Depth)
	if err != nil {
		return fmt.Errorf("could not create engine: %w", err)
	}

	log.Info("Engine ready", "rules", engine.Rules().String(), "depth", engine.Depth())

	var moveRepo repository.MoveRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		moveRepo = repository.NewMoveRepository(redisStorage, conf.Redis.TTL)
		log.Info("Move cache enabled", "addr", redisAddrString, "ttl", conf.Redis.TTL)
	}

	gameUseCase := usecase.NewGameUseCase(logger, engine, moveRepo)
	router := rest.NewRouter(logger, gameUseCase, conf.StaticDir)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
