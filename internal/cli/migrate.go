package cli

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/maxviazov/board-service/internal/config"
	"github.com/maxviazov/board-service/internal/repository"
	"github.com/maxviazov/board-service/migrations"
)

// NewMigrateCmd creates the migrate command. It applies the embedded schema to postgres.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("config loading failed: %w", err)
			}
			if cfg.Storage.Driver != "postgres" {
				cmd.Printf("storage driver is %q, nothing to migrate\n", cfg.Storage.Driver)
				return nil
			}

			db, err := sql.Open("pgx", repository.DSN(&cfg.Postgres))
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			if err := migrations.Up(cmd.Context(), db); err != nil {
				return err
			}
			cmd.Println("migrations applied")
			return nil
		},
	}
}
