package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-learner/internal/config"
	"github.com/rocketscienceinc/tictactoe-learner/internal/pattern"
	"github.com/rocketscienceinc/tictactoe-learner/internal/repository"
	"github.com/rocketscienceinc/tictactoe-learner/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-learner/internal/service"
	"github.com/rocketscienceinc/tictactoe-learner/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-learner/transport/console"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - plays the configured number of games on the terminal.
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

	loseRecordRepo, closeStore, err := openLoseRecords(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open lose records: %w", err)
	}

	defer func() {
		if err = closeStore(); err != nil {
			log.Error("could not close lose record storage", "error", err)
		}
	}()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok

	var simulated service.SimulatedPersonService
	if conf.Opponent == config.OpponentRandom {
		simulated = service.NewSimulatedPersonService(rnd)
	}

	newBot := func(patterns *pattern.Set) service.BotService {
		return service.NewBotService(logger, patterns, rnd)
	}

	gameManager := usecase.NewGameManager(logger, loseRecordRepo, console.New(os.Stdin, os.Stdout), newBot, simulated)

	for i := 0; i < conf.Games; i++ {
		if ctx.Err() != nil {
			log.Info("stopping before game", "game", i+1, "error", ctx.Err())
			return nil
		}

		game, playErr := gameManager.Play(ctx)
		if playErr != nil {
			if ctx.Err() != nil || errors.Is(playErr, io.EOF) {
				log.Info("game abandoned", "error", playErr)
				return nil
			}
			return fmt.Errorf("game failed: %w", playErr)
		}

		log.Info("game finished", "game", i+1, "record", game.Record.String(), "winner", game.Verdict.Winner.String())
	}

	return nil
}

func openLoseRecords(ctx context.Context, conf *config.Config) (repository.LoseRecordRepository, func() error, error) {
	switch conf.Storage.Type {
	case config.StorageRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisLoseRecordRepository(redisStorage.Connection, conf.Redis.Key), redisStorage.Close, nil
	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteLoseRecordRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	default:
		return repository.NewFileLoseRecordRepository(conf.Storage.Path), func() error { return nil }, nil
	}
}
