package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/board-service/internal/config"
	"github.com/maxviazov/board-service/internal/handler"
	"github.com/maxviazov/board-service/internal/logger"
	"github.com/maxviazov/board-service/internal/repository"
	"github.com/maxviazov/board-service/internal/repository/memory"
	"github.com/maxviazov/board-service/internal/repository/postgres"
	"github.com/maxviazov/board-service/internal/route"
	"github.com/maxviazov/board-service/internal/server"
	"github.com/maxviazov/board-service/internal/service"
)

// NewServeCmd creates the serve command.
func NewServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Example: `  # Serve the demo board from memory
  board serve --config config.yaml

  # Use postgres; secrets come from the environment
  APP_STORAGE_DRIVER=postgres APP_POSTGRES_USER=board APP_POSTGRES_PASSWORD=secret APP_POSTGRES_DB=board board serve`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("config loading failed: %w", err)
			}
			appLogger, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("logger initialization failed: %w", err)
			}
			return serve(cmd.Context(), cfg, appLogger)
		},
	}
}

// newLogger fills logger identity from the app section when the logger section leaves it blank.
func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	lc := cfg.Logger
	if lc.Env == "" {
		lc.Env = cfg.App.Env
	}
	if lc.ServiceName == "" {
		lc.ServiceName = cfg.App.Name
	}
	if lc.ServiceVersion == "" {
		lc.ServiceVersion = cfg.App.Version
	}
	return logger.New(&lc)
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	posts, pinger, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	board := service.NewBoardService(posts, cfg.Board.PageSize, cfg.Board.MaxPageSize, log)
	engine := server.NewEngine(cfg.App.Env, log, pinger, board, route.DefaultTable())

	log.Info().
		Str("storage", cfg.Storage.Driver).
		Int("page_size", cfg.Board.PageSize).
		Msg("🚀 service started")
	return server.New(cfg.App, engine, log).Run(ctx)
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.PostRepository, handler.Pinger, func(), error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := repository.New(ctx, &cfg.Postgres, &log)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres connection failed: %w", err)
		}
		return postgres.NewPostRepository(db.Pool()), postgres.NewPinger(db.Pool()), db.Close, nil
	default:
		repo, err := memory.NewSeededPostRepository(cfg.Storage.SeedFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("memory storage failed: %w", err)
		}
		return repo, repo, func() {}, nil
	}
}
