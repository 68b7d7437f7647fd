package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/deppfellow/v1-api/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	ls, err := NewLoggerService(config.DefaultObservabilityConfig())
	require.NoError(t, err)

	assert.Nil(t, ls.GetApplication())
	assert.NotPanics(t, ls.Shutdown)

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestNewLogger_JSONOutput(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"

	var buf bytes.Buffer
	log := newLogger(&buf, cfg, nil)

	log.Debug().Msg("hidden")
	log.Info().Str("k", "v").Msg("visible")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "visible", line["message"])
	assert.Equal(t, "v", line["k"])
	assert.Equal(t, "v1-api", line["service"])
	assert.Equal(t, "development", line["environment"])
}

func TestNewLogger_FallbackLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	log := newLogger(&bytes.Buffer{}, cfg, nil)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, int(tt.want), GetPgxTraceLogLevel(tt.level))
		})
	}
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	l := WithTraceContext(log, nil)
	l.Info().Msg("x")

	assert.NotContains(t, buf.String(), "trace.id")
}

func TestFromContext(t *testing.T) {
	fallback := zerolog.Nop()

	assert.Same(t, &fallback, FromContext(context.Background(), &fallback))

	scoped := zerolog.New(&bytes.Buffer{})
	ctx := scoped.WithContext(context.Background())

	assert.NotSame(t, &fallback, FromContext(ctx, &fallback))
}
