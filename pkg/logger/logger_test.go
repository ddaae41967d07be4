package logger_test

import (
	"context"
	"os"
	"path/filepath"
	"pylintd/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NoError(t, logger.Setup(env, ""))
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestSetup_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pylintd.log")
	require.NoError(t, logger.Setup(logger.ProductionEnvironment, path))

	logger.Info(context.Background(), "connection from", zap.String("addr", "127.0.0.1:1234"))
	logger.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "connection from")
	require.Contains(t, string(b), "127.0.0.1:1234")
}

func TestGetAndWithLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "default logger expected for empty context")

	custom := zap.NewExample()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := logger.WithFields(context.Background(), zap.String("remote", "10.0.0.1"))
	require.NotNil(t, logger.Get(ctx))
	require.NotEqual(t, logger.Get(context.Background()), logger.Get(ctx))
}

func TestIsDebug(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	require.True(t, logger.IsDebug(context.Background()))

	cfg := zap.NewProductionConfig()
	infoLogger, err := cfg.Build()
	require.NoError(t, err)
	require.False(t, logger.IsDebug(logger.WithLogger(context.Background(), infoLogger)))
}

func TestLoggingFunctions(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message", zap.String("key", "value"))
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
		logger.Error(ctx, "error message", zap.String("key", "value"))
	})
}
