package logger_test

import (
	"context"
	"sellerscheck/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithFields_AttachesToContextLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("runID", "abc"))

	logger.Info(ctx, "report finished", zap.Int("domains", 11))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "report finished", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "abc", fields["runID"])
	require.EqualValues(t, 11, fields["domains"])
}

func TestGet_FallsBackToDefault(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, false))
	require.NotNil(t, logger.Get(context.Background()))
	require.False(t, logger.Get(context.Background()).Core().Enabled(zap.InfoLevel))

	require.NoError(t, logger.Setup(logger.ProductionEnvironment, true))
	require.True(t, logger.Get(context.Background()).Core().Enabled(zap.DebugLevel))
}
