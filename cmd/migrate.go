package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pylintd"
	"pylintd/internal/config"
	"pylintd/pkg/logger"
)

// migrateCommand constructs the 'migrate' subcommand that applies the
// analyses schema and the river queue schema up to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.Migrate(ctx, pylintd.Migrations); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}

			logger.Info(ctx, "database is up to date")
		},
	}

	return cmd
}
