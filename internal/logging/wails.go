package logging

import (
	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger routes the desktop runtime's log output into zerolog.
type WailsLogger struct {
	log zerolog.Logger
}

var _ logger.Logger = (*WailsLogger)(nil)

func NewWailsLogger(log zerolog.Logger) *WailsLogger {
	return &WailsLogger{log: log.With().Str("component", "wails").Logger()}
}

func (w *WailsLogger) Print(message string) { w.log.Log().Msg(message) }
func (w *WailsLogger) Trace(message string) { w.log.Trace().Msg(message) }
func (w *WailsLogger) Debug(message string) { w.log.Debug().Msg(message) }
func (w *WailsLogger) Info(message string) { w.log.Info().Msg(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn().Msg(message) }
func (w *WailsLogger) Error(message string) { w.log.Error().Msg(message) }

// Fatal logs without exiting; the runtime decides whether to stop.
func (w *WailsLogger) Fatal(message string) { w.log.WithLevel(zerolog.FatalLevel).Msg(message) }
