// Package zaplog adapts go.uber.org/zap loggers to the ipfilter.Logger
// interface.
package zaplog

import (
	"context"

	"go.uber.org/zap"

	"github.com/abczzz13/ipfilter"
)

// Logger forwards deny events to a zap logger at warn level.
type Logger struct {
	base *zap.SugaredLogger
}

var _ ipfilter.Logger = (*Logger)(nil)

// New wraps logger for use with ipfilter.WithLogger.
//
// A nil logger yields a no-op adapter.
func New(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Skip this adapter frame so caller information points at the filter.
	return &Logger{base: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// WarnContext implements ipfilter.Logger. The context is accepted for
// interface compatibility; zap carries no per-call context.
func (l *Logger) WarnContext(_ context.Context, msg string, args ...any) {
	l.base.Warnw(msg, args...)
}
