package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		enabled zapcore.Level
		skipped zapcore.Level
	}{
		{level: "info", format: "json", enabled: zapcore.InfoLevel, skipped: zapcore.DebugLevel},
		{level: "debug", format: "console", enabled: zapcore.DebugLevel, skipped: zapcore.DebugLevel - 1},
		{level: "warn", format: "", enabled: zapcore.ErrorLevel, skipped: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			require.NoError(t, err)

			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.skipped))
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", "json")
	assert.ErrorContains(t, err, `invalid log level "loud"`)

	_, err = New("info", "xml")
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}
