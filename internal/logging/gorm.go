package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// GormWriter satisfies the Printf writer gorm's logger expects and forwards each line to
// zerolog at debug level.
type GormWriter struct {
	Log zerolog.Logger
}

func (g GormWriter) Printf(format string, args ...any) {
	g.Log.Debug().Str("component", "gorm").Msgf(strings.TrimSpace(format), args...)
}
