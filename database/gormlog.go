package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/villageboy09/kiosk/pkg/logger"
)

const slowQuery = 200 * time.Millisecond

// gormLog routes gorm's own output through the zap logger so SQL failures
// and slow queries get the same encoding and key redaction as the rest.
type gormLog struct {
	log   *logger.Logger
	level gormLogger.LogLevel
	slow  time.Duration
}

// NewGormLogger logs failures at error, queries slower than slow at warn
// and, in Info mode, every statement at debug.
func NewGormLogger(baseLog *logger.Logger, level gormLogger.LogLevel, slow time.Duration) gormLogger.Interface {
	return &gormLog{log: baseLog.With("component", "gorm"), level: level, slow: slow}
}

func (g *gormLog) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *g
	cp.level = level
	return &cp
}

func (g *gormLog) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Info {
		g.log.SugaredLogger.Infof(msg, args...)
	}
}

func (g *gormLog) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Warn {
		g.log.SugaredLogger.Warnf(msg, args...)
	}
}

func (g *gormLog) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Error {
		g.log.SugaredLogger.Errorf(msg, args...)
	}
}

func (g *gormLog) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormLogger.Error:
		sql, rows := fc()
		g.log.Error("sql failed", "err", err, "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql)
	case g.slow > 0 && elapsed > g.slow && g.level >= gormLogger.Warn:
		sql, rows := fc()
		g.log.Warn("slow query", "elapsed_ms", elapsed.Milliseconds(), "threshold_ms", g.slow.Milliseconds(), "rows", rows, "sql", sql)
	case g.level >= gormLogger.Info:
		sql, rows := fc()
		g.log.Debug("sql", "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql)
	}
}
