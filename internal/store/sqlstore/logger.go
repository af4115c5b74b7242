package sqlstore

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a statement is logged as a warning.
const slowQueryThreshold = 200 * time.Millisecond

// logger sends gorm's log output to zerolog.
type logger struct {
	out   zerolog.Logger
	level gorm_logger.LogLevel
	slow  time.Duration
}

// newLogger returns a logger that traces every statement when out
// has debug logging enabled, and only warnings and errors otherwise.
func newLogger(out zerolog.Logger) *logger {
	level := gorm_logger.Warn
	if out.GetLevel() <= zerolog.DebugLevel && zerolog.GlobalLevel() <= zerolog.DebugLevel {
		level = gorm_logger.Info
	}

	return &logger{out: out, level: level, slow: slowQueryThreshold}
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Info {
		l.out.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Warn {
		l.out.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Error {
		l.out.Error().Msgf(s, args...)
	}
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gorm_logger.Error:
		sql, rows := fc()
		l.out.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] query error")
	case l.slow > 0 && elapsed > l.slow && l.level >= gorm_logger.Warn:
		sql, rows := fc()
		l.out.Warn().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Dur("threshold", l.slow).Msg("[GORM] slow query")
	case l.level >= gorm_logger.Info:
		sql, rows := fc()
		l.out.Debug().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] query")
	}
}
