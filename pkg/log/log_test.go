package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/listcomp/pkg/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    slog.Level
		wantErr error
	}{
		"error":          {input: "error", want: slog.LevelError},
		"warn":           {input: "warn", want: slog.LevelWarn},
		"warning alias":  {input: "warning", want: slog.LevelWarn},
		"info":           {input: "info", want: slog.LevelInfo},
		"debug":          {input: "debug", want: slog.LevelDebug},
		"case folded":    {input: "DEBUG", want: slog.LevelDebug},
		"unknown level":  {input: "trace", wantErr: log.ErrUnknownLogLevel},
		"empty is error": {input: "", wantErr: log.ErrUnknownLogLevel},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	for _, f := range log.AllFormats {
		got, err := log.GetFormat(f)
		require.NoError(t, err)
		assert.Equal(t, log.Format(f), got)
	}

	_, err := log.GetFormat("xml")
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)
}

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level   string
		format  string
		wantErr error
	}{
		"text":           {level: "info", format: "text"},
		"logfmt":         {level: "warn", format: "logfmt"},
		"json":           {level: "debug", format: "json"},
		"bad level":      {level: "loud", format: "json", wantErr: log.ErrUnknownLogLevel},
		"bad format":     {level: "info", format: "xml", wantErr: log.ErrUnknownLogFormat},
		"invalid marker": {level: "info", format: "xml", wantErr: log.ErrInvalidArgument},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.CreateHandlerWithStrings(&bytes.Buffer{}, tc.level, tc.format)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, h)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestCreateHandler_JSONRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(log.CreateHandler(buf, slog.LevelWarn, log.FormatJSON))

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown", slog.Int("count", 3))
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"count":3`)
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Default(), log.WithContext(context.Background()))

	buf := &bytes.Buffer{}
	logger := slog.New(log.CreateHandler(buf, slog.LevelInfo, log.FormatLogfmt))

	ctx := log.NewContext(context.Background(), logger)
	log.WithContext(ctx).Info("from context")

	assert.Contains(t, buf.String(), "msg=\"from context\"")
}
