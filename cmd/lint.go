package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pylintd/internal/client"
	"pylintd/internal/config"
	"pylintd/pkg/logger"
)

// readSource reads the file at path, or stdin when path is "-".
func readSource(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("could not read stdin: %w", err)
		}

		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read source file: %w", err)
	}

	return string(b), nil
}

// lintCommand constructs the 'lint' subcommand that sends a file to a running
// server over the TCP protocol and prints pylint's output.
func lintCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint <file|->",
		Short: "Sends a python file to a lint server and prints the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			addr, _ := cmd.Flags().GetString("addr")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			if addr == "" {
				addr = config.CheckEnvironment(cfg.TCP.IPAddress, cfg.TCP.Port).Addr()
			}

			source, err := readSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts := client.DefaultOptions()
			opts.Delimiter = cfg.TCP.Delimiter
			opts.Timeout = timeout

			start := time.Now()
			output, err := client.New(opts).Analyze(ctx, addr, source)
			if err != nil {
				return err //nolint: wrapcheck
			}

			logger.Debug(ctx, "analysis received",
				zap.String("addr", addr),
				zap.String("sent", humanize.Bytes(uint64(len(source)))),
				zap.String("took", time.Since(start).Round(time.Millisecond).String()))

			_, err = fmt.Fprint(cmd.OutOrStdout(), output)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().String("addr", "", "Server address (defaults to IP_ADDRESS:PORT)")
	cmd.Flags().Duration("timeout", 2*time.Minute, "Timeout of the whole exchange")

	return cmd
}
