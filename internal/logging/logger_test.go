package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "test", "warn")

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestWailsLogger_Forwards(t *testing.T) {
	var buf bytes.Buffer
	w := NewWailsLogger(NewWithWriter(&buf, "test", "debug"))

	w.Warning("runtime warning")
	w.Trace("too chatty")

	assert.Contains(t, buf.String(), "runtime warning")
	assert.NotContains(t, buf.String(), "too chatty")
}

func TestGormWriter(t *testing.T) {
	var buf bytes.Buffer
	GormWriter{Log: NewWithWriter(&buf, "test", "debug")}.Printf("%s slow query\n", "[200ms]")
	assert.Contains(t, buf.String(), "[200ms] slow query")
}
