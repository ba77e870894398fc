package prefstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger wraps l for use with WithLogger, so hosts that already
// run zerolog get structured prefstore logs on their existing sink.
func NewZerologLogger(l zerolog.Logger) Logger {
	return zerologLogger{l: l}
}

func (z zerologLogger) Info(ctx context.Context, format string, args ...interface{}) {
	z.l.Info().Msg(fmt.Sprintf(format, args...))
}

func (z zerologLogger) Warn(ctx context.Context, format string, args ...interface{}) {
	z.l.Warn().Msg(fmt.Sprintf(format, args...))
}

func (z zerologLogger) Error(ctx context.Context, format string, args ...interface{}) {
	z.l.Error().Msg(fmt.Sprintf(format, args...))
}

func (z zerologLogger) Debug(ctx context.Context, format string, args ...interface{}) {
	z.l.Debug().Msg(fmt.Sprintf(format, args...))
}
