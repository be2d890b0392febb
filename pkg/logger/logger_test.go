package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	testCases := []struct {
		level    string
		expected zerolog.Level
		name     string
	}{
		{"debug", zerolog.DebugLevel, "debug"},
		{"info", zerolog.InfoLevel, "info"},
		{"warn", zerolog.WarnLevel, "warn"},
		{"error", zerolog.ErrorLevel, "error"},
		{"unknown", zerolog.InfoLevel, "unknown defaults to info"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log := New(Config{Level: tc.level})
			assert.Equal(t, tc.expected, log.GetLevel())
		})
	}
}

func TestNew_Output(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info"}).Output(&buf)
	log.Info().Msg("decomposition complete")

	assert.Contains(t, buf.String(), "decomposition complete")
}
