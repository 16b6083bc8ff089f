package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/devtracer/matrixcalc/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{in: "", want: zapcore.InfoLevel},
		{in: "debug", want: zapcore.DebugLevel},
		{in: "warn", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "calc.log")
	logger, err := New(config.LogConfig{Path: path, Level: "warn"}, true)
	require.NoError(t, err)

	logger.Debug("debug forced on")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(raw), "debug forced on"), "log file:\n%s", raw)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(config.LogConfig{Path: "", Level: "info"}, false)
	require.Error(t, err)

	_, err = New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "nope"}, false)
	require.Error(t, err)
}
