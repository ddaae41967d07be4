// Package main provides the CLI entrypoint of the pylint service.
// It wires subcommands (serve, lint, migrate, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pylintd/internal/config"
	"pylintd/pkg/logger"
	"pylintd/pkg/storage/postgres"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}
	if err := pgsql.Ping(ctx); err != nil {
		logger.Fatal(ctx, "could not connect to postgres", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pylintd",
		Short: "Runs pylint on python sources sent over TCP or HTTP",
	}

	// there is no way to access flags before command execution in cobra.
	// the paths here are parsed using the standard flags package.
	// following lines are just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().StringP("env", "e", "config.env", "Env File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(nopWriter{})
	configPath := flags.String("c", "config.yml", "The config file path")
	envPath := flags.String("e", "config.env", "The env file path")
	_ = flags.Parse(leadingFlags(os.Args[1:]))

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogFile); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		lintCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// leadingFlags returns the -c and -e flags (with their values) found anywhere
// in args, so that subcommand names and flags do not stop the parse.
func leadingFlags(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		var name string
		switch args[i] {
		case "-c", "--config":
			name = "-c"
		case "-e", "--env":
			name = "-e"
		default:
			continue
		}
		if i+1 < len(args) {
			out = append(out, name, args[i+1])
			i++
		}
	}

	return out
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
